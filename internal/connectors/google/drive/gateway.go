package drive

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/archeteam/workspaced/internal/connectors/google"
	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// MimeTypeFolder is the Drive MIME type marking an item as a folder.
const MimeTypeFolder = "application/vnd.google-apps.folder"

// listFields limits listing responses to what resolution needs.
const listFields = "nextPageToken, files(id, name)"

// Ensure Gateway implements the interface.
var _ driven.DriveGateway = (*Gateway)(nil)

// Gateway performs file-storage operations through the Drive API.
type Gateway struct {
	svc     *drive.Service
	limiter *google.RateLimiter
}

// NewGateway creates a Drive gateway over an authenticated service.
func NewGateway(svc *drive.Service, limiter *google.RateLimiter) *Gateway {
	return &Gateway{svc: svc, limiter: limiter}
}

// CreateFile uploads a file via files.create with its content in the
// same request.
func (g *Gateway) CreateFile(ctx context.Context, file domain.FileUpload, parentID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	meta := &drive.File{Name: file.Name}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	var opts []googleapi.MediaOption
	if file.MIMEType != "" {
		opts = append(opts, googleapi.ContentType(file.MIMEType))
	}

	_, err := g.svc.Files.Create(meta).
		Media(bytes.NewReader(file.Content), opts...).
		Fields("id").
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// CreateFolder creates a folder via files.create.
func (g *Gateway) CreateFolder(ctx context.Context, name, parentID string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	meta := &drive.File{
		Name:     name,
		MimeType: MimeTypeFolder,
	}
	if parentID != "" {
		meta.Parents = []string{parentID}
	}

	_, err := g.svc.Files.Create(meta).Fields("id").Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// Delete removes a file or folder via files.delete.
func (g *Gateway) Delete(ctx context.Context, id string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	if err := g.svc.Files.Delete(id).Context(ctx).Do(); err != nil {
		return google.WrapError(err)
	}
	return nil
}

// Share grants a user access via permissions.create.
func (g *Gateway) Share(ctx context.Context, id string, grant domain.PermissionGrant) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return err
	}

	perm := &drive.Permission{
		Type:         "user",
		Role:         grant.Role,
		EmailAddress: grant.Email,
	}

	_, err := g.svc.Permissions.Create(id, perm).
		SendNotificationEmail(grant.Notify).
		Context(ctx).Do()
	if err != nil {
		return google.WrapError(err)
	}
	return nil
}

// ListFiles fetches one page of non-trashed items, optionally scoped to
// a parent folder and optionally restricted to folders.
func (g *Gateway) ListFiles(ctx context.Context, parentID, pageToken string, foldersOnly bool) ([]domain.ResourceRef, string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	query := "trashed = false"
	if foldersOnly {
		query += fmt.Sprintf(" and mimeType = '%s'", MimeTypeFolder)
	}
	if parentID != "" {
		query += fmt.Sprintf(" and '%s' in parents", parentID)
	}

	req := g.svc.Files.List().Q(query).Fields(listFields)
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}

	list, err := req.Context(ctx).Do()
	if err != nil {
		return nil, "", google.WrapError(err)
	}

	refs := make([]domain.ResourceRef, 0, len(list.Files))
	for _, f := range list.Files {
		refs = append(refs, domain.ResourceRef{ID: f.Id, Name: f.Name})
	}
	return refs, list.NextPageToken, nil
}
