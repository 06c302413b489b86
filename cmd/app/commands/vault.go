package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	cryptoDomain "github.com/allisson/legacyvault/internal/crypto/domain"
	vaultDomain "github.com/allisson/legacyvault/internal/offlinevault/domain"
	vaultUseCase "github.com/allisson/legacyvault/internal/offlinevault/usecase"
)

// VaultDeps bundles what every vault command needs.
type VaultDeps struct {
	Vault    vaultUseCase.Vault
	KeyStore vaultUseCase.DeviceKeyStore
	Logger   *slog.Logger
	Writer   io.Writer
	Reader   io.Reader
}

// documentView is the printable form of a document. Content is only set by get.
type documentView struct {
	ID             string    `json:"id"`
	FileName       string    `json:"file_name"`
	DocumentType   string    `json:"document_type"`
	FileSize       int64     `json:"file_size"`
	UploadedAt     time.Time `json:"uploaded_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Tags           []string  `json:"tags"`
	Content        []byte    `json:"content,omitempty"`
}

func newDocumentView(doc *vaultDomain.Document) documentView {
	tags := doc.Tags
	if tags == nil {
		tags = []string{}
	}
	return documentView{
		ID:             doc.ID,
		FileName:       doc.FileName,
		DocumentType:   doc.DocumentType,
		FileSize:       doc.FileSize,
		UploadedAt:     doc.UploadedAt,
		LastAccessedAt: doc.LastAccessedAt,
		Tags:           tags,
	}
}

// openVault opens the vault with the device key and wipes the caller's copy of the key.
func openVault(ctx context.Context, deps VaultDeps) error {
	key, err := deps.KeyStore.LoadOrCreate(ctx)
	if err != nil {
		return fmt.Errorf("failed to load device key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	if err := deps.Vault.Open(ctx, key); err != nil {
		return fmt.Errorf("failed to open offline vault: %w", err)
	}
	return nil
}

func closeVault(deps VaultDeps) {
	if err := deps.Vault.Close(); err != nil {
		deps.Logger.Error("failed to close offline vault", slog.Any("error", err))
	}
}

// withVault validates the format, opens the vault, runs fn and closes the vault.
func withVault(ctx context.Context, deps VaultDeps, format string, fn func() error) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if err := openVault(ctx, deps); err != nil {
		return err
	}
	defer closeVault(deps)

	return fn()
}

// RunVaultAdd stores the file at filePath in the offline vault. A filePath of "-" reads
// the content from deps.Reader. An empty id lets the vault generate one; an existing
// id is replaced.
func RunVaultAdd(
	ctx context.Context,
	deps VaultDeps,
	filePath string,
	id string,
	documentType string,
	tags []string,
	format string,
) error {
	content, fileName, err := readDocument(deps.Reader, filePath)
	if err != nil {
		return err
	}

	return withVault(ctx, deps, format, func() error {
		doc := &vaultDomain.Document{
			ID:           id,
			FileName:     fileName,
			DocumentType: documentType,
			Content:      content,
			Tags:         cleanTags(tags),
		}
		if err := deps.Vault.AddDocument(ctx, doc); err != nil {
			return fmt.Errorf("failed to add document: %w", err)
		}

		deps.Logger.Info("document added to offline vault",
			slog.String("id", doc.ID),
			slog.Int64("file_size", doc.FileSize),
		)

		if format == "json" {
			return writeJSON(deps.Writer, newDocumentView(doc))
		}
		_, err := fmt.Fprintf(deps.Writer, "Added document %s (%s, %d bytes)\n", doc.ID, doc.FileName, doc.FileSize)
		return err
	})
}

// RunVaultGet decrypts one document. With outputPath the content is written to that
// file (mode 0600); otherwise text format writes the raw content to the writer and
// json format embeds it base64 encoded.
func RunVaultGet(ctx context.Context, deps VaultDeps, id string, outputPath string, format string) error {
	return withVault(ctx, deps, format, func() error {
		doc, err := deps.Vault.GetDocument(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}
		defer cryptoDomain.Zero(doc.Content)

		view := newDocumentView(doc)

		if outputPath != "" {
			if err := os.WriteFile(outputPath, doc.Content, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputPath, err)
			}
			if format == "json" {
				return writeJSON(deps.Writer, view)
			}
			_, err := fmt.Fprintf(deps.Writer, "Wrote document %s to %s (%d bytes)\n", doc.ID, outputPath, len(doc.Content))
			return err
		}

		if format == "json" {
			view.Content = doc.Content
			return writeJSON(deps.Writer, view)
		}
		_, err = deps.Writer.Write(doc.Content)
		return err
	})
}

// RunVaultList prints every document without its content.
func RunVaultList(ctx context.Context, deps VaultDeps, format string) error {
	return withVault(ctx, deps, format, func() error {
		docs, err := deps.Vault.GetDocuments(ctx)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}

		views := make([]documentView, 0, len(docs))
		for _, doc := range docs {
			cryptoDomain.Zero(doc.Content)
			views = append(views, newDocumentView(doc))
		}

		if format == "json" {
			return writeJSON(deps.Writer, map[string]any{"documents": views})
		}

		if len(views) == 0 {
			_, err := fmt.Fprintln(deps.Writer, "No documents in the offline vault")
			return err
		}

		tw := tabwriter.NewWriter(deps.Writer, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSIZE\tUPLOADED\tTAGS")
		for _, v := range views {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
				v.ID, v.FileName, v.DocumentType, v.FileSize,
				v.UploadedAt.Format(time.RFC3339), strings.Join(v.Tags, ","),
			)
		}
		return tw.Flush()
	})
}

// RunVaultRemove deletes one document. Removing an unknown id is reported, not failed.
func RunVaultRemove(ctx context.Context, deps VaultDeps, id string, format string) error {
	return withVault(ctx, deps, format, func() error {
		removed, err := deps.Vault.RemoveDocument(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to remove document: %w", err)
		}

		deps.Logger.Info("offline vault remove", slog.String("id", id), slog.Bool("removed", removed))

		if format == "json" {
			return writeJSON(deps.Writer, map[string]any{"id": id, "removed": removed})
		}
		if removed {
			_, err = fmt.Fprintf(deps.Writer, "Removed document %s\n", id)
		} else {
			_, err = fmt.Fprintf(deps.Writer, "Document %s not found\n", id)
		}
		return err
	})
}

// RunVaultClear deletes every document. It refuses to run without confirm.
func RunVaultClear(ctx context.Context, deps VaultDeps, confirm bool, format string) error {
	if !confirm {
		return fmt.Errorf("refusing to clear the offline vault without --yes")
	}

	return withVault(ctx, deps, format, func() error {
		if err := deps.Vault.ClearAll(ctx); err != nil {
			return fmt.Errorf("failed to clear offline vault: %w", err)
		}

		deps.Logger.Warn("offline vault cleared")

		if format == "json" {
			return writeJSON(deps.Writer, map[string]any{"cleared": true})
		}
		_, err := fmt.Fprintln(deps.Writer, "Offline vault cleared")
		return err
	})
}

// RunVaultStats prints the document count and total size.
func RunVaultStats(ctx context.Context, deps VaultDeps, format string) error {
	return withVault(ctx, deps, format, func() error {
		stats, err := deps.Vault.GetStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to get offline vault stats: %w", err)
		}

		if format == "json" {
			return writeJSON(deps.Writer, map[string]any{
				"document_count": stats.DocumentCount,
				"total_size":     stats.TotalSize,
			})
		}
		_, err = fmt.Fprintf(deps.Writer, "Documents: %d\nTotal size: %d bytes\n", stats.DocumentCount, stats.TotalSize)
		return err
	})
}

func readDocument(stdin io.Reader, filePath string) ([]byte, string, error) {
	if filePath == "-" {
		if stdin == nil {
			return nil, "", fmt.Errorf("failed to read stdin: no input")
		}
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, "stdin", nil
	}

	content, err := os.ReadFile(filePath) //nolint:gosec // path is an operator supplied CLI argument
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return content, filepath.Base(filePath), nil
}

// cleanTags trims tags and drops empty ones.
func cleanTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
