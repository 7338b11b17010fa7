package postgres

import (
	"context"
	"regexp"
	"strconv"

	"clipcast/internal/domain/entity"
	"clipcast/internal/domain/repository"
	"clipcast/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "username or email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required user field")
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// IDsByRole returns the IDs of committed users holding any of the given
// roles. The read is always fresh; candidate pools are never cached.
func (repo *userRepository) IDsByRole(ctx context.Context, roles ...entity.Role) ([]int64, error) {
	roleStrings := make([]string, len(roles))
	for i, r := range roles {
		roleStrings[i] = r.String()
	}

	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("role IN ?", roleStrings).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user ids by role")
	}

	return ids, nil
}

// AllIDs returns every committed user ID.
func (repo *userRepository) AllIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user ids")
	}

	return ids, nil
}

// MaxSeedSequence scans usernames of the form <prefix><n> and returns the
// highest embedded sequence number, or -1 when no row matches. The numeric
// extraction happens in Go so the LIKE filter stays portable across the
// production store and the SQLite test store.
func (repo *userRepository) MaxSeedSequence(ctx context.Context, prefix string) (int, error) {
	var usernames []string
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username LIKE ?", prefix+"%").
		Pluck("username", &usernames).Error; err != nil {
		return -1, errors.Wrap(err, "failed to scan seed usernames")
	}

	pattern, err := regexp.Compile("^" + regexp.QuoteMeta(prefix) + `(\d+)$`)
	if err != nil {
		return -1, errors.Wrap(err, "failed to compile seed sequence pattern")
	}

	maxSeq := -1
	for _, username := range usernames {
		match := pattern.FindStringSubmatch(username)
		if match == nil {
			// Prefix collision without a numeric suffix; not ours.
			continue
		}
		seq, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return maxSeq, nil
}

// Page returns up to limit users in primary key order.
func (repo *userRepository) Page(ctx context.Context, limit int) ([]*entity.User, error) {
	var userMs []model.UserModel
	if err := repo.db.WithContext(ctx).
		Order("user_id").
		Limit(limit).
		Find(&userMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to page users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// --- Mapper functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Name:             data.Name,
		LastName:         data.LastName,
		Username:         data.Username,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		RegistrationDate: data.RegistrationDate,
		ProfilePicURL:    data.ProfilePicURL,
		Role:             entity.Role(data.Role),
		BirthDate:        data.BirthDate,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Name:             data.Name,
		LastName:         data.LastName,
		Username:         data.Username,
		Email:            data.Email,
		PasswordHash:     data.PasswordHash,
		RegistrationDate: data.RegistrationDate,
		ProfilePicURL:    data.ProfilePicURL,
		Role:             data.Role.String(),
		BirthDate:        data.BirthDate,
	}
}
