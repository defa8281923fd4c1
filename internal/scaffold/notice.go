package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hsolberg/plume/internal/generator"
	"github.com/hsolberg/plume/internal/output"
)

// NoticeFileName is the fixed name of the persisted copyright notice.
const NoticeFileName = "COPYRIGHT.txt"

// noticeYear is the literal year stamped into new notices. A fixed literal
// rather than the clock, so identical inputs always render identical text.
const noticeYear = 2026

const noticeTemplate = `/*
 * Copyright (c) {{ .Year }} {{ .Author }}
 * This file is part of the {{ .Project }} project.
 * All rights reserved.
 * Unauthorized copying, via any medium, is strictly prohibited.
 */
`

var noticeRenderer = generator.NewRenderer()

// RenderNotice renders the notice block for a new COPYRIGHT.txt.
func RenderNotice(author, project string) (string, error) {
	data := struct {
		Year    int
		Author  string
		Project string
	}{noticeYear, author, project}

	text, err := noticeRenderer.RenderString("copyright", noticeTemplate, data)
	if err != nil {
		return "", fmt.Errorf("rendering copyright notice: %w", err)
	}
	return string(text), nil
}

// NoticeProvider supplies the copyright notice shared by all files generated
// in a directory.
type NoticeProvider struct {
	prompter Prompter
}

// NewNoticeProvider creates a provider that prompts for author and project
// name when a directory has no notice yet.
func NewNoticeProvider(prompter Prompter) *NoticeProvider {
	return &NoticeProvider{prompter: prompter}
}

// GetOrCreate returns the notice for dir.
//
// An existing COPYRIGHT.txt is returned exactly as stored. Otherwise the
// provider collects author and project name, persists the rendered notice
// once, and returns it. Later calls then take the read branch, so the notice
// stays stable for every subsequent generation in that directory.
//
// Nothing is written when either prompt is cancelled or empty.
func (p *NoticeProvider) GetOrCreate(dir string) (string, error) {
	path := filepath.Join(dir, NoticeFileName)

	data, err := os.ReadFile(path)
	if err == nil {
		output.Verbose(fmt.Sprintf("Using existing notice: %s", path))
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	author, ok := p.prompter.Input("Author", "")
	if !ok || author == "" {
		return "", fmt.Errorf("author: %w", ErrMissingInput)
	}

	project, ok := p.prompter.Input("Project name", "")
	if !ok || project == "" {
		return "", fmt.Errorf("project name: %w", ErrMissingInput)
	}

	text, err := RenderNotice(author, project)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	output.Verbose(fmt.Sprintf("Created notice: %s", path))

	return text, nil
}
