// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pdfengine

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// WKHTMLTOPDFEngine pipes the document through the wkhtmltopdf binary.
type WKHTMLTOPDFEngine struct {
	Command string
	Args    []string
	Timeout time.Duration
}

var wkhtmltopdfDefaultArgs = []string{
	"--quiet",
	"--encoding", "utf-8",
	"--page-size", "A4",
	"--enable-local-file-access",
}

// Render reads HTML from stdin and the PDF from stdout.
func (engine *WKHTMLTOPDFEngine) Render(ctx context.Context, html []byte) ([]byte, error) {
	command := strings.TrimSpace(engine.Command)
	if command == "" {
		command = "wkhtmltopdf"
	}

	cmdCtx, cancel := withTimeout(ctx, engine.Timeout)
	defer cancel()

	args := append(append([]string{}, wkhtmltopdfDefaultArgs...), engine.Args...)
	args = append(args, "-", "-")

	cmd := exec.CommandContext(cmdCtx, command, args...)
	cmd.Stdin = bytes.NewReader(html)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdfengine: wkhtmltopdf: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("pdfengine: wkhtmltopdf produced no output")
	}
	return stdout.Bytes(), nil
}
