package sauce

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/sauce/internal/codec"
)

// Save writes the file, including its current in-memory metadata, back
// to the original path.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the original path. If any step fails, the original file remains unchanged.
//
// Options can be provided to customize save behavior:
//
//	err := file.Save(
//	    sauce.WithBackup(".bak"),
//	    sauce.WithValidation(),
//	)
func (f *File) Save(opts ...SaveOption) error {
	return f.SaveAs(f.Path, opts...)
}

// SaveAs writes the file to a new location.
//
// The output is rebuilt from the payload: payload, EOF marker, comment
// block (when comment lines are present) and the 128-byte record.
// Record.FileSize and Record.Comments are updated to match before
// encoding. With no record attached, the bare payload is written.
//
// This is an atomic operation: writes to a temporary file first, then renames
// to the output path. If any step fails, any partially written data is cleaned up.
func (f *File) SaveAs(outputPath string, opts ...SaveOption) error {
	options := defaultSaveOptions()
	for _, opt := range opts {
		opt(options)
	}

	// Encode before touching the filesystem, so an EncodingError never
	// leaves a temp file behind.
	data, err := codec.Render(f.Payload_, f.Record, f.Comments)
	if err != nil {
		return err
	}

	// Get original file's mod time if we need to preserve it
	var origInfo os.FileInfo
	if options.preserveModTime {
		info, err := os.Stat(f.Path)
		if err == nil {
			origInfo = info
		}
	}

	// Create temp file in same directory as output (for atomic rename)
	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".sauce-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure cleanup on any error
	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	// Sync temp file (fsync) to ensure data is on disk
	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close temp file before rename
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	// Handle backup option (rename original to .bak before replace)
	if options.backupSuffix != "" {
		backupPath := outputPath + options.backupSuffix
		// Check if output file exists before trying to back it up
		if _, err := os.Stat(outputPath); err == nil {
			if err := os.Rename(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	// Atomic rename temp -> output
	if err := os.Rename(tempPath, outputPath); err != nil {
		return fmt.Errorf("rename temp to output: %w", err)
	}

	// Mark success so defer doesn't clean up
	success = true

	// Handle preserveModTime option
	if options.preserveModTime && origInfo != nil {
		_ = os.Chtimes(outputPath, origInfo.ModTime(), origInfo.ModTime())
	}

	// Handle validate option (re-open and compare key fields)
	if options.validate {
		if err := f.validateWrittenFile(outputPath); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return nil
}

// validateWrittenFile re-opens the file and compares key metadata fields.
func (f *File) validateWrittenFile(path string) error {
	written, err := Open(path)
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	if f.Record == nil {
		if written.Record != nil {
			return fmt.Errorf("expected no record, found one")
		}
		return nil
	}
	if written.Record == nil {
		return fmt.Errorf("record missing from written file")
	}

	if written.Record.Title != f.Record.Title {
		return fmt.Errorf("title mismatch: got %q, want %q", written.Record.Title, f.Record.Title)
	}
	if written.Record.Author != f.Record.Author {
		return fmt.Errorf("author mismatch: got %q, want %q", written.Record.Author, f.Record.Author)
	}
	if written.Record.Group != f.Record.Group {
		return fmt.Errorf("group mismatch: got %q, want %q", written.Record.Group, f.Record.Group)
	}
	if len(written.Comments) != len(f.Comments) {
		return fmt.Errorf("comment count mismatch: got %d, want %d", len(written.Comments), len(f.Comments))
	}

	return nil
}
