package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"communitysync/lib/officernd"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("directory")

// Service runs the full pipeline: fetch raw records, transform, hand the
// renderer its arrays. Raw records are ephemeral, fetched fresh per run.
type Service struct {
	client *officernd.Client
}

func NewService(client *officernd.Client) Service {
	return Service{client: client}
}

// BuildDirectory fetches members and companies and transforms both. Any
// fetch failure aborts the run; transformation itself never fails.
func (s Service) BuildDirectory(ctx context.Context) (Directory, error) {
	ctx, span := tracer.Start(ctx, "directory:BuildDirectory")
	defer span.End()

	rawMembers, err := s.client.FetchMembers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch members")
		return Directory{}, err
	}
	rawCompanies, err := s.client.FetchCompanies(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch companies")
		return Directory{}, err
	}

	members := TransformAllMembers(ctx, rawMembers)
	companies := TransformAllCompanies(ctx, rawCompanies, rawMembers)

	slog.InfoContext(ctx, "built directory",
		"members_fetched", len(rawMembers),
		"members_kept", len(members),
		"companies_fetched", len(rawCompanies),
		"companies_kept", len(companies),
	)
	return Directory{Members: members, Companies: companies}, nil
}

// WriteSnapshot writes members.json and companies.json for the static
// renderer. The pipeline itself mandates no format; this is the CLI's
// handover artifact.
func WriteSnapshot(dir Directory, outDir string) error {
	err := os.MkdirAll(outDir, 0o755)
	if err != nil {
		return err
	}
	err = writeJSON(filepath.Join(outDir, "members.json"), dir.Members)
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(outDir, "companies.json"), dir.Companies)
}

func writeJSON(path string, v any) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
