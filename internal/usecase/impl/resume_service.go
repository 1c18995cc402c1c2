package impl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"jobtrack/config"
	deliverycontext "jobtrack/internal/delivery/context"
	"jobtrack/internal/domain/constants"
	"jobtrack/internal/domain/entity"
	domainerrors "jobtrack/internal/domain/errors"
	"jobtrack/internal/domain/repository"
	"jobtrack/internal/domain/service"
	"jobtrack/internal/errors"
	"jobtrack/internal/usecase"
	"jobtrack/internal/validation"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	gommonbytes "github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

// sniffLen is how much of an upload is read to detect its type.
const sniffLen = 3072

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type resumeService struct {
	userRepo   repository.UserRepository
	resumeRepo repository.ResumeRepository
	storage    service.FileStorage
	maxUpload  int64
	events     eventEmitter
	logger     *slog.Logger
}

// ResumeServiceParams holds dependencies for ResumeService, injected by Fx.
type ResumeServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	ResumeRepo repository.ResumeRepository
	Storage    service.FileStorage
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewResumeService creates the resume usecase. It fails when storage.maxUploadSize is not a valid size.
func NewResumeService(params ResumeServiceParams) (usecase.ResumeUsecase, error) {
	maxUpload, err := params.Config.Storage.MaxUploadBytes()
	if err != nil {
		return nil, err
	}

	return &resumeService{
		userRepo:   params.UserRepo,
		resumeRepo: params.ResumeRepo,
		storage:    params.Storage,
		maxUpload:  maxUpload,
		events:     eventEmitter{publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}, nil
}

func (srv *resumeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// UploadResume checks the file type by content, stores the binary and records its metadata.
func (srv *resumeService) UploadResume(ctx context.Context, input *usecase.UploadResumeInput) (*entity.Resume, error) {
	if input.Content == nil || input.Size <= 0 {
		return nil, errors.WithStack(domainerrors.ErrResumeFileMissing)
	}

	input.TargetPosition = strings.TrimSpace(input.TargetPosition)
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	if input.Size > srv.maxUpload {
		return nil, errors.WithStack(domainerrors.ErrResumeFileTooLarge.WithDetails(
			fmt.Sprintf("%s exceeds the %s limit", gommonbytes.Format(input.Size), gommonbytes.Format(srv.maxUpload))))
	}

	contentType, ext, content, err := sniffResume(input.Content, input.OriginalName)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load resume owner")
	}

	key := input.UserID + "/" + uuid.NewString() + ext

	link, err := srv.storage.Put(ctx, key, content, input.Size, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store resume", slog.String("key", key), slog.Any("error", err))

		return nil, domainerrors.ErrResumeUploadFailed.Wrap(err)
	}

	resume := &entity.Resume{
		UserID:         input.UserID,
		FileName:       fmt.Sprintf("%s%s-%s%s", user.FirstName, user.LastName, input.TargetPosition, ext),
		TargetPosition: input.TargetPosition,
		Skills:         cleanSkills(input.Skills),
		ResumeLink:     link,
		StorageKey:     key,
		UploadedOn:     time.Now().UTC(),
	}

	if err := srv.resumeRepo.Create(ctx, resume); err != nil {
		if delErr := srv.storage.Delete(ctx, key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned resume object", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrResumeCreateFailed.Wrap(err)
	}

	srv.log(ctx).Info("Resume uploaded",
		slog.String("user_id", input.UserID),
		slog.String("resume_id", resume.ID),
		slog.String("size", gommonbytes.Format(input.Size)),
	)

	srv.events.emit(ctx, constants.EventResumeUploaded, resume.UserID, resume.ID, map[string]string{
		"file_name":    resume.FileName,
		"content_type": contentType,
	})

	return resume, nil
}

func (srv *resumeService) ListResumes(ctx context.Context, userID string, page entity.PageRequest) (*entity.Page[entity.Resume], error) {
	if err := validPage(page); err != nil {
		return nil, err
	}

	result, err := srv.resumeRepo.List(ctx, userID, page)
	if err != nil {
		return nil, domainerrors.ErrResumeListFailed.Wrap(err)
	}

	return result, nil
}

// sniffResume detects the upload type from its leading bytes and returns the
// content type, the stored extension and a reader positioned at the start of the file.
// Office files that only sniff as their container are accepted when the client
// name carries the matching extension.
func sniffResume(r io.Reader, originalName string) (string, string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", "", nil, domainerrors.ErrResumeUploadFailed.Wrap(err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	clientExt := strings.ToLower(filepath.Ext(originalName))

	var contentType, ext string
	switch {
	case detected.Is(mimePDF):
		contentType, ext = mimePDF, ".pdf"
	case detected.Is(mimeDOCX):
		contentType, ext = mimeDOCX, ".docx"
	case detected.Is(mimeDOC):
		contentType, ext = mimeDOC, ".doc"
	case detected.Is("application/zip") && clientExt == ".docx":
		contentType, ext = mimeDOCX, ".docx"
	case detected.Is("application/x-ole-storage") && clientExt == ".doc":
		contentType, ext = mimeDOC, ".doc"
	default:
		return "", "", nil, errors.WithStack(domainerrors.ErrResumeFileType.WithDetails("detected " + detected.String()))
	}

	return contentType, ext, io.MultiReader(bytes.NewReader(head), r), nil
}
