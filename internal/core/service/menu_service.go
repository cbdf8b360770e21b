package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

// MenuCache caches public menu listings. A failing cache must never fail a
// request: the service logs and falls through to the repository.
type MenuCache interface {
	GetList(ctx context.Context, availableOnly bool) ([]domain.MenuItem, bool, error)
	SetList(ctx context.Context, availableOnly bool, items []domain.MenuItem) error
	Invalidate(ctx context.Context) error
}

type MenuService struct {
	repo   ports.MenuRepository
	assets ports.AssetStore
	cache  MenuCache // optional
	logger zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, assets ports.AssetStore, cache MenuCache, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, assets: assets, cache: cache, logger: logger}
}

// List returns catalog items sorted by category then name for stable browse
// presentation.
func (s *MenuService) List(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error) {
	if s.cache != nil {
		items, hit, err := s.cache.GetList(ctx, availableOnly)
		if err != nil {
			s.logger.Warn().Err(err).Msg("menu cache read failed, falling back to store")
		} else if hit {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, availableOnly, items); err != nil {
			s.logger.Warn().Err(err).Msg("menu cache write failed")
		}
	}
	return items, nil
}

// Get returns a single catalog item by id.
func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and persists a new catalog item. When an image accompanies
// the call the asset is stored first; if the record insert then fails, the
// stored asset is deleted so no orphaned file remains.
func (s *MenuService) Create(ctx context.Context, input ports.CreateMenuItemInput, image *ports.ImageUpload) (*domain.MenuItem, error) {
	category := domain.Category(input.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, input.Category)
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: name and description are required", domain.ErrInvalidMenuItem)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidMenuItem)
	}

	var imagePath string
	if image != nil {
		path, err := s.assets.Save(ctx, "imageFile", image.Filename, image.Reader)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to store menu image")
			return nil, fmt.Errorf("store menu image: %w", err)
		}
		imagePath = path
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	now := time.Now().UTC()
	item := &domain.MenuItem{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		ImagePath:   imagePath,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		s.deleteAsset(ctx, imagePath, "roll back stored image after failed insert")
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create menu item")
		return nil, err
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("id", created.ID).Str("name", created.Name).Msg("menu item created")
	return created, nil
}

// Update applies a partial update: nil input fields keep their prior values.
// A new image replaces the old asset; the previous file is deleted only after
// the new one is committed on the record.
func (s *MenuService) Update(ctx context.Context, id string, input ports.UpdateMenuItemInput, image *ports.ImageUpload) (*domain.MenuItem, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil && !domain.Category(*input.Category).Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, *input.Category)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidMenuItem)
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", domain.ErrInvalidMenuItem)
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) == "" {
		return nil, fmt.Errorf("%w: description must not be blank", domain.ErrInvalidMenuItem)
	}

	var newPath string
	if image != nil {
		newPath, err = s.assets.Save(ctx, "imageFile", image.Filename, image.Reader)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to store replacement menu image")
			return nil, fmt.Errorf("store menu image: %w", err)
		}
	}

	updated := *existing
	if input.Name != nil {
		updated.Name = *input.Name
	}
	if input.Description != nil {
		updated.Description = *input.Description
	}
	if input.Price != nil {
		updated.Price = *input.Price
	}
	if input.Category != nil {
		updated.Category = domain.Category(*input.Category)
	}
	if input.Available != nil {
		updated.Available = *input.Available
	}
	if newPath != "" {
		updated.ImagePath = newPath
	}
	updated.UpdatedAt = time.Now().UTC()

	result, err := s.repo.Update(ctx, &updated)
	if err != nil {
		// The item vanished or the write failed: the freshly stored asset
		// must not be left orphaned.
		s.deleteAsset(ctx, newPath, "discard uploaded image after failed update")
		if !errors.Is(err, domain.ErrMenuItemNotFound) {
			s.logger.Error().Err(err).Str("id", id).Msg("failed to update menu item")
		}
		return nil, err
	}

	if newPath != "" && existing.ImagePath != "" && existing.ImagePath != newPath {
		s.deleteAsset(ctx, existing.ImagePath, "delete replaced image")
	}

	s.invalidateCache(ctx)
	s.logger.Info().Str("id", result.ID).Msg("menu item updated")
	return result, nil
}

// Delete removes the item record and, when present, its associated image.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.deleteAsset(ctx, item.ImagePath, "delete image of removed item")
	s.invalidateCache(ctx)
	s.logger.Info().Str("id", id).Str("name", item.Name).Msg("menu item deleted")
	return nil
}

// deleteAsset removes a stored asset, logging rather than failing the request.
// External references (seeded absolute URLs) are not managed by the store and
// are skipped.
func (s *MenuService) deleteAsset(ctx context.Context, relPath, action string) {
	if relPath == "" || strings.Contains(relPath, "://") {
		return
	}
	if err := s.assets.Delete(ctx, relPath); err != nil {
		s.logger.Error().Err(err).Str("image", relPath).Msgf("failed to %s", action)
	}
}

func (s *MenuService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
