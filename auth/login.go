package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"urbanharvest/globals"
	"urbanharvest/middleware"
	"urbanharvest/models"
	"urbanharvest/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// loginDelay approximates a slow credential backend so the UI's loading
// states stay honest.
const loginDelay = 500 * time.Millisecond

var ErrInvalidCredentials = errors.New("invalid email or password")

type demoUser struct {
	models.User
	PasswordHash string // md5 via utils.EncrypIt
}

// Fixed demo credential list. This is not an account system; there is no
// registration path and no password management.
var demoUsers = []demoUser{
	{
		User:         models.User{UserID: "1", Name: "John Customer", Email: "customer@example.com", Role: "customer"},
		PasswordHash: "482c811da5d5b4bc6d497ffa98491e38", // password123
	},
	{
		User:         models.User{UserID: "2", Name: "Green Roof Gardens", Email: "farm@example.com", Role: "farmer"},
		PasswordHash: "a184d3326284f6c047bedfc75f1747e7", // farm123
	},
}

// Check matches credentials against the demo list. The error never says
// whether the email or the password was wrong.
func Check(email, password string) (models.User, error) {
	time.Sleep(loginDelay)

	hash := utils.EncrypIt(password)
	for _, u := range demoUsers {
		if u.Email == email && u.PasswordHash == hash {
			return u.User, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		Username: user.Name,
		UserID:   user.UserID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := Check(input.Email, input.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokenString, err := generateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.SendResponse(w, http.StatusOK, utils.M{
		"token": tokenString,
		"user":  user,
	}, "Login successful", nil)
}

// Tokens are stateless; logout just acknowledges so clients discard theirs.
func logoutHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}
