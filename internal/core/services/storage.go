package services

import (
	"context"
	"fmt"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// Ensure StorageService implements the interface.
var _ driving.StorageOps = (*StorageService)(nil)

// StorageService is the authenticated access layer for drive operations.
// Callers address files and folders by name with an optional parent
// folder name; both are resolved to remote identifiers before the single
// mutating call. Creation never checks for an existing resource with the
// same name, so retried creates can produce duplicates.
type StorageService struct {
	auth     *Authenticator
	resolver *Resolver
	remote   driven.RemoteServices
}

// NewStorageService creates the drive access layer.
func NewStorageService(auth *Authenticator, resolver *Resolver, remote driven.RemoteServices) *StorageService {
	return &StorageService{auth: auth, resolver: resolver, remote: remote}
}

func (s *StorageService) gateway(ctx context.Context) (driven.DriveGateway, error) {
	cred, err := s.auth.EnsureValid(ctx, domain.DriveScopes())
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	gw, err := s.remote.Drive(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemote, err)
	}
	return gw, nil
}

// resolveParent maps an optional parent folder name to its identifier.
// An empty name means no parent scoping and resolves to the empty ID.
func (s *StorageService) resolveParent(ctx context.Context, gw driven.DriveGateway, parentName string) (string, error) {
	if parentName == "" {
		return "", nil
	}
	return s.resolver.Resolve(ctx, domain.KindFolder, parentName, func(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		return gw.ListFiles(ctx, "", pageToken, true)
	})
}

// resolveChild maps a file or folder name within a parent to its identifier.
func (s *StorageService) resolveChild(ctx context.Context, gw driven.DriveGateway, kind domain.ResourceKind, name, parentID string) (string, error) {
	foldersOnly := kind == domain.KindFolder
	return s.resolver.Resolve(ctx, kind, name, func(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		return gw.ListFiles(ctx, parentID, pageToken, foldersOnly)
	})
}

// CreateFile uploads a file, optionally under the named parent folder.
func (s *StorageService) CreateFile(ctx context.Context, file domain.FileUpload, parentName string) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	parentID, err := s.resolveParent(ctx, gw, parentName)
	if err != nil {
		return err
	}

	logger.Info("creating file %q (parent %q)", file.Name, parentName)
	if err := gw.CreateFile(ctx, file, parentID); err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

// DeleteFile removes the first file with the given name, optionally
// scoped to the named parent folder.
func (s *StorageService) DeleteFile(ctx context.Context, name, parentName string) error {
	return s.deleteByName(ctx, domain.KindFile, name, parentName)
}

// CreateFolder creates a folder, optionally under the named parent.
func (s *StorageService) CreateFolder(ctx context.Context, name, parentName string) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	parentID, err := s.resolveParent(ctx, gw, parentName)
	if err != nil {
		return err
	}

	logger.Info("creating folder %q (parent %q)", name, parentName)
	if err := gw.CreateFolder(ctx, name, parentID); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

// DeleteFolder removes the first folder with the given name, optionally
// scoped to the named parent folder.
func (s *StorageService) DeleteFolder(ctx context.Context, name, parentName string) error {
	return s.deleteByName(ctx, domain.KindFolder, name, parentName)
}

// ShareFolder grants access on the named folder to an account.
func (s *StorageService) ShareFolder(ctx context.Context, name, parentName string, grant domain.PermissionGrant) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	parentID, err := s.resolveParent(ctx, gw, parentName)
	if err != nil {
		return err
	}

	folderID, err := s.resolveChild(ctx, gw, domain.KindFolder, name, parentID)
	if err != nil {
		return err
	}

	if grant.Role == "" {
		grant.Role = domain.DefaultShareRole
	}

	logger.Info("sharing folder %q (%s) with %s as %s", name, folderID, grant.Email, grant.Role)
	if err := gw.Share(ctx, folderID, grant); err != nil {
		return fmt.Errorf("share folder: %w", err)
	}
	return nil
}

func (s *StorageService) deleteByName(ctx context.Context, kind domain.ResourceKind, name, parentName string) error {
	gw, err := s.gateway(ctx)
	if err != nil {
		return err
	}

	parentID, err := s.resolveParent(ctx, gw, parentName)
	if err != nil {
		return err
	}

	id, err := s.resolveChild(ctx, gw, kind, name, parentID)
	if err != nil {
		return err
	}

	logger.Info("deleting %s %q (%s)", kind, name, id)
	if err := gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", kind, err)
	}
	return nil
}
