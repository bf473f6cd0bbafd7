package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/prediction-game/catalog"
	"github.com/Dosada05/prediction-game/models"
	"github.com/Dosada05/prediction-game/storage"
)

type CatalogService interface {
	ListTeams(ctx context.Context) []models.Team
	ListGroups(ctx context.Context) []models.Group
	// UploadFlag stores a flag image for the team at its predefined asset key.
	UploadFlag(ctx context.Context, teamID, contentType string, r io.Reader) (*models.Team, error)
}

type catalogService struct {
	catalog  *catalog.Catalog
	uploader storage.FileUploader // nil when the flag store is not configured
	logger   *slog.Logger
}

func NewCatalogService(cat *catalog.Catalog, uploader storage.FileUploader, logger *slog.Logger) CatalogService {
	return &catalogService{catalog: cat, uploader: uploader, logger: logger}
}

func (s *catalogService) ListTeams(ctx context.Context) []models.Team {
	teams := s.catalog.Teams()
	if s.uploader == nil {
		return teams
	}
	for i := range teams {
		if teams[i].FlagKey != nil {
			url := s.uploader.GetPublicURL(*teams[i].FlagKey)
			if url != "" {
				teams[i].FlagURL = &url
			}
		}
	}
	return teams
}

func (s *catalogService) ListGroups(ctx context.Context) []models.Group {
	return s.catalog.Groups()
}

func (s *catalogService) UploadFlag(ctx context.Context, teamID, contentType string, r io.Reader) (*models.Team, error) {
	if s.uploader == nil {
		return nil, ErrFlagStoreDisabled
	}
	team, ok := s.catalog.Team(teamID)
	if !ok {
		return nil, ErrTeamNotFound
	}
	if team.FlagKey == nil {
		return nil, fmt.Errorf("team %s has no flag asset key", teamID)
	}

	result, err := s.uploader.Upload(ctx, *team.FlagKey, contentType, r)
	if err != nil {
		return nil, fmt.Errorf("failed to upload flag for team %s: %w", teamID, err)
	}
	s.logger.Info("flag asset uploaded", slog.String("team_id", teamID), slog.String("key", result.Key))

	team.FlagURL = &result.Location
	return &team, nil
}
