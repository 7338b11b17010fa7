package postgres

import (
	"context"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// videoRepository implements the repository.VideoRepository interface.
type videoRepository struct {
	db *gorm.DB
}

// NewVideoRepository is the constructor for videoRepository.
func NewVideoRepository(db *gorm.DB) repository.VideoRepository {
	return &videoRepository{db: db}
}

// Create persists a new video row.
func (repo *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	videoM := fromVideoDomain(video)

	if err := repo.db.WithContext(ctx).Create(videoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "creator does not exist")
		}

		return errors.Wrap(err, "failed to create video")
	}

	video.ID = videoM.ID

	return nil
}

// IDs returns every committed video ID.
func (repo *videoRepository) IDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Pluck("video_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list video ids")
	}

	return ids, nil
}

// Page returns up to limit videos starting at offset, ordered by primary
// key so successive pages never overlap.
func (repo *videoRepository) Page(ctx context.Context, offset, limit int) ([]*entity.Video, error) {
	var videoMs []model.VideoModel
	if err := repo.db.WithContext(ctx).
		Order("video_id").
		Offset(offset).
		Limit(limit).
		Find(&videoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to page videos")
	}

	videos := make([]*entity.Video, 0, len(videoMs))
	for i := range videoMs {
		videos = append(videos, toVideoDomain(&videoMs[i]))
	}

	return videos, nil
}

// --- Mapper functions ---

func toVideoDomain(data *model.VideoModel) *entity.Video {
	if data == nil {
		return nil
	}

	return &entity.Video{
		ID:             data.ID,
		CreatorID:      data.CreatorID,
		Title:          data.Title,
		Description:    data.Description,
		Duration:       data.Duration,
		UploadDatetime: data.UploadDatetime,
		Visibility:     entity.Visibility(data.Visibility),
	}
}

func fromVideoDomain(data *entity.Video) *model.VideoModel {
	if data == nil {
		return nil
	}

	return &model.VideoModel{
		ID:             data.ID,
		CreatorID:      data.CreatorID,
		Title:          data.Title,
		Description:    data.Description,
		Duration:       data.Duration,
		UploadDatetime: data.UploadDatetime,
		Visibility:     data.Visibility.String(),
	}
}
