// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "fikrislam_backend/internals/features/users/auth/model"
	userModel "fikrislam_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}

/* ====================== ROLE ====================== */

// ResolveUserRole: ambil role dari user_roles; tanpa record ⇒ "user"
func ResolveUserRole(db *gorm.DB, userID uuid.UUID) string {
	var rec userModel.UserRoleModel
	if err := db.Where("user_role_user_id = ?", userID).First(&rec).Error; err != nil {
		return "user"
	}
	return rec.UserRoleRole
}

/* ====================== REFRESH TOKEN ====================== */

func StoreRefreshToken(db *gorm.DB, rt *authModel.RefreshTokenModel) error {
	return db.Create(rt).Error
}

func FindRefreshToken(db *gorm.DB, token string) (*authModel.RefreshTokenModel, error) {
	var rec authModel.RefreshTokenModel
	if err := db.Where("token = ?", token).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func DeleteRefreshToken(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&authModel.RefreshTokenModel{}).Error
}

func DeleteRefreshTokensByUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshTokenModel{}).Error
}

/* ====================== BLACKLIST ====================== */

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: expiredAt,
	}).Error
}

func PurgeExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Where("expired_at < ?", time.Now()).Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}

/* ====================== PASSWORD RESET ====================== */

func StorePasswordReset(db *gorm.DB, pr *authModel.PasswordResetModel) error {
	return db.Create(pr).Error
}

func FindActivePasswordReset(db *gorm.DB, token string) (*authModel.PasswordResetModel, error) {
	var rec authModel.PasswordResetModel
	if err := db.Where("token = ? AND used_at IS NULL AND expires_at > ?", token, time.Now()).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func MarkPasswordResetUsed(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.PasswordResetModel{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}

/* ====================== PROFILE ====================== */

func UpsertProfileFullName(db *gorm.DB, userID uuid.UUID, fullName string) error {
	rec := userModel.UserProfileModel{
		UserProfileUserID:   userID,
		UserProfileFullName: &fullName,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_profile_user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_profile_full_name", "user_profile_updated_at"}),
	}).Create(&rec).Error
}
