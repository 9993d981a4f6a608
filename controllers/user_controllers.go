package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/lezzetkare/models"
	"github.com/yeremiapane/lezzetkare/store"
	"github.com/yeremiapane/lezzetkare/utils"
)

// activityLogCap -> hanya 100 entry aktivitas terakhir yang disimpan
const activityLogCap = 100

type UserController struct {
	DB    *gorm.DB
	Store store.Store
}

func NewUserController(db *gorm.DB, st store.Store) *UserController {
	return &UserController{DB: db, Store: st}
}

// logActivity -> tulis satu entry login/logout, trim ke 100 terakhir
func (uc *UserController) logActivity(username, action string) {
	var entries []models.ActivityEntry
	if err := uc.Store.Get(store.KeyActivityLog, &entries); err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.ErrorLogger.Printf("read activity log: %v", err)
		return
	}
	entries = append(entries, models.ActivityEntry{
		ID:        uuid.NewString(),
		Username:  username,
		Action:    action,
		CreatedAt: time.Now(),
	})
	if len(entries) > activityLogCap {
		entries = entries[len(entries)-activityLogCap:]
	}
	if err := uc.Store.Put(store.KeyActivityLog, entries); err != nil {
		utils.ErrorLogger.Printf("write activity log: %v", err)
	}
}

// Register -> buat akun staff baru (admin yang memanggil endpoint ini)
func (uc *UserController) Register(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := strings.ToLower(body.Role)
	if role == "" {
		role = "staff"
	}
	if role != "staff" && role != "admin" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("role must be staff or admin"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:     body.Name,
		Email:    strings.ToLower(body.Email),
		Password: string(hashed),
		Role:     role,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusConflict, errors.New("email is already registered"))
		return
	}

	utils.InfoLogger.Printf("user %s registered with role %s", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "User registered", user)
}

// Login -> verifikasi kredensial, terbitkan JWT 24 jam, catat aktivitas
func (uc *UserController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("email = ?", strings.ToLower(body.Email)).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	uc.logActivity(user.Name, models.ActivityLogin)
	utils.InfoLogger.Printf("user %s logged in", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout -> blacklist token sampai kadaluarsa, catat aktivitas
func (uc *UserController) Logout(c *gin.Context) {
	token := c.GetHeader("Authorization")
	token = strings.TrimPrefix(token, "Bearer ")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing token"))
		return
	}
	utils.BlacklistToken(token)

	if userID, ok := c.Get("user_id"); ok {
		var user models.User
		if err := uc.DB.First(&user, userID).Error; err == nil {
			uc.logActivity(user.Name, models.ActivityLogout)
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Profile -> data akun pemegang token
func (uc *UserController) Profile(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthenticated"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User profile", user)
}

// GetActivityLog -> 100 entry aktivitas terakhir untuk dashboard admin
func (uc *UserController) GetActivityLog(c *gin.Context) {
	var entries []models.ActivityEntry
	err := uc.Store.Get(store.KeyActivityLog, &entries)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Activity log", entries)
}
