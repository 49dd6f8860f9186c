package clientgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/developerxd/webapiclientgen/clientgen/csharp"
	"github.com/developerxd/webapiclientgen/config"
	"github.com/developerxd/webapiclientgen/errors"
	"github.com/developerxd/webapiclientgen/logger"
)

// StripMarkers removes the artifact markers printers leave behind.
func StripMarkers(content string) string {
	return strings.ReplaceAll(content, csharp.Marker, "")
}

// WriteOutput writes every file to w, each preceded by a language banner.
func WriteOutput(w io.Writer, files []GeneratedFile) error {
	if w == nil {
		return errors.NewInvalidInputError("no output writer given")
	}
	for _, f := range files {
		if _, err := fmt.Fprintf(w, "// Language: %s\n// File: %s\n%s\n", f.Language, f.Name, f.Content); err != nil {
			return errors.Wrapf(err, "failed to write %s", f.Name)
		}
	}
	return nil
}

// SaveToFile writes content to dir/name, creating dir when needed, and
// returns the written path.
func SaveToFile(dir, name, content string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.NewInvalidInputError("no output file name given")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), config.DefaultFilePermissions); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}
	return path, nil
}

// Save writes every file into dir and runs the formatter configured for its
// language, if any. formatters maps a language to a shell-quoted command;
// the file path is appended as the last argument.
func (o *Output) Save(ctx context.Context, dir string, formatters map[string]string) ([]string, error) {
	paths := make([]string, 0, len(o.Files))
	for _, f := range o.Files {
		path, err := SaveToFile(dir, f.Name, f.Content)
		if err != nil {
			return nil, err
		}
		if cmd := formatters[f.Language]; cmd != "" {
			if err := FormatFile(ctx, cmd, path); err != nil {
				return nil, err
			}
		}
		logger.Debugw("wrote generated file", logger.FieldFile, path, logger.FieldLanguage, f.Language)
		paths = append(paths, path)
	}
	return paths, nil
}

// FormatFile runs command with path appended.
func FormatFile(ctx context.Context, command, path string) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidInput, "formatter command %q: %v", command, err)
	}
	if len(args) == 0 {
		return errors.NewInvalidInputError("formatter command is empty")
	}
	args = append(args, path)

	var out bytes.Buffer
	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Stdout = &out
	c.Stderr = &out
	if err := c.Run(); err != nil {
		return errors.WithDetail(
			errors.Wrapf(err, "formatter %s failed on %s", args[0], path),
			out.String())
	}
	return nil
}
