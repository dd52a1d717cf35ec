package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"path/filepath"

	"github.com/Kariqs/storefront-api/authz"
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/models"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	tokenLength = 32

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid username or password"
	msgAccountNotActivated   = "Account not activated, check your email to activate email."
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgInvalidActivationLink = "Invalid or expired activation link"
	msgActivationSuccess     = "account has been activated successfully."
	msgResetLinkSent         = "Check your email for a password reset link."
	msgUserCreated           = "User created successfully. Check your email to activate your account."
	msgUserNotFound          = "user with this email does not exist"
	msgUnableToResetPassword = "unable to reset password"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func sendTemplateEmail(user models.User, subject, message, path, token, templateName string) {
	if Mailer == nil {
		log.Println("Mailer not configured, skipping email to:", user.Email)
		return
	}
	emailData := utils.EmailData{
		Name:            user.Username,
		Message:         message,
		VerificationURL: initializers.AppConfig.FrontendURL + path + "?token=" + url.QueryEscape(token),
		LogoURL:         initializers.AppConfig.FrontendURL + "/images/logo.png",
	}
	templatePath := filepath.Join("templates", templateName)
	if err := Mailer.SendEmail(user.Email, subject, emailData, templatePath); err != nil {
		log.Printf("Error sending %q email to %s: %v", subject, user.Email, err)
		return
	}
	log.Printf("%q email sent successfully to: %s", subject, user.Email)
}

// Signup registers a customer profile together with its login.
func Signup(ctx *gin.Context) {
	var signUpData models.SignupData
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	activationToken := utils.GenerateCode(tokenLength)
	user, err := services.RegisterAccount(database(ctx), signUpData, hashedPassword, activationToken)
	if errors.Is(err, services.ErrDuplicate) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, "Failed to create account", err)
		return
	}

	sendTemplateEmail(*user, "Account Verification",
		"Thank you for signing up! Click the button below to verify your account.",
		"/auth/verify-email", activationToken, "verify_email.html")

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated, "customerId": user.CustomerID})
}

// Login handles user authentication
func Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := services.FindUserByIdentifier(database(ctx), loginData.Identifier)
	if errors.Is(err, services.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, "Failed to look up user", err)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	if !user.AccountActivated {
		sendErrorResponse(ctx, http.StatusBadRequest, msgAccountNotActivated)
		return
	}

	tokenString, err := authz.IssueToken(*user, initializers.AppConfig.JWTSecret, initializers.AppConfig.JWTTTL)
	if err != nil {
		log.Println("JWT generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"token": tokenString, "user": user})
}

func ActivateAccount(ctx *gin.Context) {
	err := services.ActivateAccount(database(ctx), ctx.Param("activationToken"))
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidInput) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidActivationLink)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, "Failed to activate account", err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgActivationSuccess})
}

func SendPasswordResetLink(ctx *gin.Context) {
	type ForgotPasswordBody struct {
		Email string `json:"email" binding:"required,email"`
	}

	var forgotPasswordData ForgotPasswordBody
	if err := ctx.ShouldBindJSON(&forgotPasswordData); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	resetToken := utils.GenerateCode(tokenLength)
	user, err := services.SetPasswordResetToken(database(ctx), forgotPasswordData.Email, resetToken)
	if errors.Is(err, services.ErrNotFound) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserNotFound)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, "Failed to save reset token", err)
		return
	}

	sendTemplateEmail(*user, "Storefront Account Password Reset",
		"You requested a password reset. Click the button below to reset your password.",
		"/auth/reset-password", resetToken, "reset_password.html")

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgResetLinkSent})
}

func ResetPassword(ctx *gin.Context) {
	type ResetPasswordInfo struct {
		Password string `json:"password" binding:"required,min=8"`
	}

	var resetPasswordData ResetPasswordInfo
	if err := ctx.ShouldBindJSON(&resetPasswordData); err != nil {
		log.Println("Invalid reset password data:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	hashedPassword, err := hashPassword(resetPasswordData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}

	err = services.ResetPassword(database(ctx), ctx.Param("resetToken"), hashedPassword)
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrInvalidInput) {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidActivationLink)
		return
	}
	if err != nil {
		respondWithServiceError(ctx, msgUnableToResetPassword, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Password reset successful"})
}
