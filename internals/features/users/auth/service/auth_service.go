package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fikrislam_backend/internals/configs"
	authDTO "fikrislam_backend/internals/features/users/auth/dto"
	authModel "fikrislam_backend/internals/features/users/auth/model"
	authRepo "fikrislam_backend/internals/features/users/auth/repository"
	userModel "fikrislam_backend/internals/features/users/user/model"
	helper "fikrislam_backend/internals/helpers"
)

var validateAuth = validator.New()

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if existing, _ := authRepo.FindUserByEmailOrUsername(db, body.Email); existing != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName: body.UserName,
		Email:    strings.ToLower(strings.TrimSpace(body.Email)),
		Password: string(hashed),
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Println("[ERROR] create user:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	if strings.TrimSpace(body.FullName) != "" {
		if err := authRepo.UpsertProfileFullName(db, user.ID, body.FullName); err != nil {
			log.Println("[WARN] create profile:", err)
		}
	}

	// registrasi baru selalu role "user"; contributor/admin diberikan admin
	return issueTokenPair(db, c, &user, helper.JsonCreated)
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrUsername(db, strings.TrimSpace(body.Identifier))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email/username atau password salah")
	}

	return issueTokenPair(db, c, user, helper.JsonOK)
}

/* ==========================
   GOOGLE LOGIN
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca Google ID token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		// belum ada → coba tautkan via email, atau buat user baru
		user, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if user == nil {
			newUser := userModel.UserModel{
				UserName: claimSet.Name,
				Email:    strings.ToLower(claimSet.Email),
				Password: "-", // login hanya via Google
				GoogleID: &claimSet.Sub,
				IsActive: true,
			}
			if err := authRepo.CreateUser(db, &newUser); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
			}
			user = &newUser
		} else if user.GoogleID == nil {
			user.GoogleID = &claimSet.Sub
			_ = db.Model(user).Update("google_id", claimSet.Sub).Error
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return issueTokenPair(db, c, user, helper.JsonOK)
}

/* ==========================
   REFRESH & LOGOUT
========================== */

func Refresh(db *gorm.DB, c *fiber.Ctx) error {
	var body authDTO.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validateAuth.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	stored, err := authRepo.FindRefreshToken(db, body.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak dikenal")
	}

	userIDStr, err := ParseRefreshToken(body.RefreshToken)
	if err != nil {
		_ = authRepo.DeleteRefreshToken(db, body.RefreshToken)
		return err
	}

	user, err := authRepo.FindUserByID(db, stored.UserID)
	if err != nil || user.ID.String() != userIDStr {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// rotasi: token lama dihapus, pasangan baru diterbitkan
	_ = authRepo.DeleteRefreshToken(db, body.RefreshToken)
	return issueTokenPair(db, c, user, helper.JsonOK)
}

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("access_token").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := authRepo.BlacklistToken(db, tokenString, AccessTokenExpiry(tokenString)); err != nil {
		log.Println("[ERROR] blacklist token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		_ = authRepo.DeleteRefreshTokensByUser(db, userID)
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   Internal
========================== */

type successFn func(c *fiber.Ctx, message string, data any) error

func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel, respond successFn) error {
	role := authRepo.ResolveUserRole(db, user.ID)

	access, _, err := GenerateAccessToken(user, role)
	if err != nil {
		return err
	}
	refresh, refreshExp, err := GenerateRefreshToken(user)
	if err != nil {
		return err
	}
	if err := authRepo.StoreRefreshToken(db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: refreshExp,
	}); err != nil {
		log.Println("[ERROR] store refresh token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan sesi")
	}

	return respond(c, "Autentikasi berhasil", authDTO.TokenPairDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		User: authDTO.AuthUserDTO{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     role,
		},
	})
}
