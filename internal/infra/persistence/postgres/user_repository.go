package postgres

import (
	"context"
	"time"

	"wastefleet/internal/domain/entity"
	domainerrors "wastefleet/internal/domain/errors"
	"wastefleet/internal/domain/repository"
	"wastefleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a user by email address.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ListUsersWithNotificationsEnabled retrieves all users subscribed to vehicle notifications.
func (repo *userRepository) ListUsersWithNotificationsEnabled(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("notification_enabled = ?", true).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateNotificationPreference replaces the embedded notification preference.
func (repo *userRepository) UpdateNotificationPreference(ctx context.Context, userID uuid.UUID, pref entity.NotificationPreference) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"notification_enabled":   pref.Enabled,
			"notification_radius_km": pref.RadiusKm,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification preference")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateLastNotifiedAt records when a proximity notification was last sent.
func (repo *userRepository) UpdateLastNotifiedAt(ctx context.Context, userID uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("last_notified_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last notified timestamp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateHomeCoordinate stores the coordinate proximity queries run from.
func (repo *userRepository) UpdateHomeCoordinate(ctx context.Context, userID uuid.UUID, coordinate entity.Coordinate) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"home_latitude":  coordinate.Latitude,
			"home_longitude": coordinate.Longitude,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update home coordinate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Role:         data.Role,
		PasswordHash: data.PasswordHash,
		Preference: entity.NotificationPreference{
			Enabled:        data.NotificationEnabled,
			RadiusKm:       data.NotificationRadiusKm,
			LastNotifiedAt: data.LastNotifiedAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.HomeLatitude != nil && data.HomeLongitude != nil {
		user.HomeCoordinate = &entity.Coordinate{
			Latitude:  *data.HomeLatitude,
			Longitude: *data.HomeLongitude,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		Role:                 data.Role,
		PasswordHash:         data.PasswordHash,
		NotificationEnabled:  data.Preference.Enabled,
		NotificationRadiusKm: data.Preference.RadiusKm,
		LastNotifiedAt:       data.Preference.LastNotifiedAt,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}

	if data.HomeCoordinate != nil {
		userM.HomeLatitude = &data.HomeCoordinate.Latitude
		userM.HomeLongitude = &data.HomeCoordinate.Longitude
	}

	return userM
}
