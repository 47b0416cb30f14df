package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	apperrors "football-roster-backend/internal/errors"
	"football-roster-backend/internal/logger"
	"football-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// AssetConfig holds the asset store settings, passed in explicitly from
// the application config.
type AssetConfig struct {
	// UploadDir is the filesystem directory uploads are written to.
	UploadDir string
	// PublicPath is the URL path prefix stored on the player record.
	PublicPath string
	// AllowedExtensions are the accepted file extensions, lowercase,
	// without the leading dot.
	AllowedExtensions []string
}

// AssetService stores uploaded player images under a filename-addressed
// upload root and records the public path on the player. Filenames are not
// namespaced per player, so identical names overwrite each other.
type AssetService struct {
	playerRepo repository.PlayerRepositoryInterface
	cfg        AssetConfig
}

// NewAssetService creates a new asset service
func NewAssetService(playerRepo repository.PlayerRepositoryInterface, cfg AssetConfig) *AssetService {
	return &AssetService{
		playerRepo: playerRepo,
		cfg:        cfg,
	}
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// sanitizeFilename strips path components and characters outside
// [A-Za-z0-9_.-], so the result is always safe to join under the upload
// root.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// SavePlayerImage validates and stores an uploaded image, then records its
// public path on the player.
func (s *AssetService) SavePlayerImage(playerID uint, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFileSupplied
	}
	if file.Filename == "" {
		return "", apperrors.ErrEmptyFilename
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), ".")
	if ext == "" || !s.extensionAllowed(ext) {
		return "", apperrors.ErrInvalidFileType
	}

	filename := sanitizeFilename(file.Filename)
	if filename == "" {
		return "", apperrors.ErrEmptyFilename
	}

	if err := s.writeFile(file, filepath.Join(s.cfg.UploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	publicPath := path.Join(s.cfg.PublicPath, filename)

	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrPlayerNotFound
		}
		return "", fmt.Errorf("failed to get player: %w", err)
	}
	player.PlayerImage = &publicPath
	if err := s.playerRepo.Update(player); err != nil {
		return "", fmt.Errorf("failed to record image on player: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"player_id": playerID,
		"filename":  filename,
	}).Info("player image stored")

	return publicPath, nil
}

func (s *AssetService) extensionAllowed(ext string) bool {
	for _, allowed := range s.cfg.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *AssetService) writeFile(file *multipart.FileHeader, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
