package domain

import (
	"bytes"
	"errors"
	"strings"

	"github.com/buger/jsonparser"
	m "oaks.dev/pkg/hygiene/internal/model"
)

const (
	reasonCompilerMessage = "compiler-message"
	reasonBuildFinished   = "build-finished"
)

// BuildMessage is one decoded line of the build tool's JSON output.
type BuildMessage struct {
	Reason string
	// Diagnostic is set for compiler messages that are not compiler summaries.
	Diagnostic *m.Diagnostic
	// Success is meaningful only for build-finished messages.
	Success bool
}

// ParseBuildMessage decodes a single line of `--message-format=json` output.
// ok is false for blank lines, non-JSON lines and messages without a reason.
func ParseBuildMessage(line []byte) (msg BuildMessage, ok bool) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '{' {
		return BuildMessage{}, false
	}

	reason, err := jsonparser.GetString(line, "reason")
	if err != nil {
		return BuildMessage{}, false
	}

	msg.Reason = reason

	switch reason {
	case reasonBuildFinished:
		msg.Success, _ = jsonparser.GetBoolean(line, "success")
	case reasonCompilerMessage:
		msg.Diagnostic = parseDiagnostic(line)
	}

	return msg, true
}

func parseDiagnostic(line []byte) *m.Diagnostic {
	message, err := jsonparser.GetString(line, "message", "message")
	if err != nil {
		return nil
	}

	level, _ := jsonparser.GetString(line, "message", "level")
	rendered, _ := jsonparser.GetString(line, "message", "rendered")
	pkgID, _ := jsonparser.GetString(line, "package_id")

	file, lineNo, hasSpan := primarySpan(line)
	if !hasSpan && isCompilerSummary(message) {
		return nil
	}

	return &m.Diagnostic{
		Package:  packageName(pkgID),
		Severity: severityOf(level),
		Message:  message,
		Rendered: rendered,
		File:     file,
		Line:     lineNo,
	}
}

// primarySpan returns the span flagged is_primary, or the first span.
func primarySpan(line []byte) (string, int, bool) {
	var (
		file    string
		lineNo  int64
		found   bool
		primary bool
	)

	_, err := jsonparser.ArrayEach(line, func(value []byte, _ jsonparser.ValueType, _ int, _ error) {
		if primary {
			return
		}

		isPrimary, _ := jsonparser.GetBoolean(value, "is_primary")
		if found && !isPrimary {
			return
		}

		file, _ = jsonparser.GetString(value, "file_name")
		lineNo, _ = jsonparser.GetInt(value, "line_start")
		found = true
		primary = isPrimary
	}, "message", "spans")
	if err != nil && !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return "", 0, false
	}

	return file, int(lineNo), found
}

// isCompilerSummary matches the trailing "aborting due to" and
// "N warnings emitted" messages, which repeat counts already reported.
func isCompilerSummary(message string) bool {
	return strings.HasPrefix(message, "aborting due to") ||
		strings.HasSuffix(message, "warning emitted") ||
		strings.HasSuffix(message, "warnings emitted")
}

func severityOf(level string) m.Severity {
	switch {
	case level == "error", strings.HasPrefix(level, "error:"):
		return m.SeverityError
	case level == "warning":
		return m.SeverityWarning
	default:
		return m.SeverityOther
	}
}

// packageName trims a package id down to the crate name. Both the legacy
// "oak-core 0.1.0 (path+file:///...)" form and the newer
// "path+file:///x/oak-core#0.1.0" / "...#oak-core@0.1.0" forms are accepted.
func packageName(id string) string {
	if name, _, ok := strings.Cut(id, " "); ok {
		return name
	}

	base, frag, ok := strings.Cut(id, "#")
	if !ok {
		return id
	}

	if name, _, ok := strings.Cut(frag, "@"); ok {
		return name
	}

	return base[strings.LastIndex(base, "/")+1:]
}
