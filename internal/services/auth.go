package services

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Aioflcu/paylink/internal/logger"
	"github.com/Aioflcu/paylink/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPIN         = errors.New("invalid transaction PIN")
	ErrPINNotSet          = errors.New("transaction PIN not set")
	ErrAccountLocked      = errors.New("account is locked")
)

// Consecutive wrong PIN entries before the account is locked, and for how long.
const (
	maxPINFailures  = 3
	pinLockDuration = 15 * time.Minute
)

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string, email string) (uuid.UUID, error)
	SetTransactionPIN(ctx context.Context, userID uuid.UUID, pinHash string) error
	RecordFailedPIN(ctx context.Context, userID uuid.UUID) (int, error)
	ResetFailedPIN(ctx context.Context, userID uuid.UUID) error
	Lock(ctx context.Context, userID uuid.UUID, until time.Time, reason string) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// WalletProvisioner creates the user's wallets on registration.
type WalletProvisioner interface {
	EnsureWallets(ctx context.Context, userID uuid.UUID) error
}

// PinAttemptLogger appends transaction PIN attempts to the audit log.
type PinAttemptLogger interface {
	Save(ctx context.Context, userID uuid.UUID, success bool) error
}

// LoginEventWriter appends login events, which feed the risk scorer.
type LoginEventWriter interface {
	Save(ctx context.Context, event models.LoginEventDB) error
}

// DeviceToucher upserts a device fingerprint and reports novelty.
type DeviceToucher interface {
	Touch(ctx context.Context, userID uuid.UUID, fingerprint string) (bool, error)
}

// AuthService handles registration, login and transaction PIN verification.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTGenerator
	wallets     WalletProvisioner
	pinAttempts PinAttemptLogger
	logins      LoginEventWriter
	devices     DeviceToucher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	jwt JWTGenerator,
	wallets WalletProvisioner,
	pinAttempts PinAttemptLogger,
	logins LoginEventWriter,
	devices DeviceToucher,
) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		wallets:     wallets,
		pinAttempts: pinAttempts,
		logins:      logins,
		devices:     devices,
	}
}

// Register registers a new user and provisions their main and savings wallets.
func (svc *AuthService) Register(ctx context.Context, username, password, email string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword), email)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	if err := svc.wallets.EnsureWallets(ctx, userID); err != nil {
		logger.Log.Errorw("failed to provision wallets", "userID", userID, "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a JWT token. The login event and
// device fingerprint are recorded as inputs for the risk scorer; failures
// there do not fail the login.
func (svc *AuthService) Login(ctx context.Context, username, password, ip, deviceFingerprint string, lat, lon *float64) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	if err := svc.logins.Save(ctx, models.LoginEventDB{
		UserID:    user.UserID,
		IP:        ip,
		Latitude:  lat,
		Longitude: lon,
		DeviceID:  deviceFingerprint,
	}); err != nil {
		logger.Log.Errorw("failed to record login event", "userID", user.UserID, "err", err)
	}
	if deviceFingerprint != "" {
		if _, err := svc.devices.Touch(ctx, user.UserID, deviceFingerprint); err != nil {
			logger.Log.Errorw("failed to record device", "userID", user.UserID, "err", err)
		}
	}

	return token, nil
}

// SetTransactionPIN stores a 4-6 digit transaction PIN for the user.
func (svc *AuthService) SetTransactionPIN(ctx context.Context, userID uuid.UUID, pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash PIN", "err", err)
		return err
	}

	return svc.writer.SetTransactionPIN(ctx, userID, string(hash))
}

// VerifyTransactionPIN checks the PIN, logging every attempt. Three
// consecutive failures lock the account for pinLockDuration.
func (svc *AuthService) VerifyTransactionPIN(ctx context.Context, userID uuid.UUID, pin string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user for PIN check", "userID", userID, "err", err)
		return err
	}

	if user.Locked(time.Now()) {
		return ErrAccountLocked
	}
	if user.TransactionPINHash == nil {
		return ErrPINNotSet
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.TransactionPINHash), []byte(pin)); err != nil {
		if err := svc.pinAttempts.Save(ctx, userID, false); err != nil {
			logger.Log.Errorw("failed to log PIN attempt", "userID", userID, "err", err)
		}

		count, err := svc.writer.RecordFailedPIN(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to record PIN failure", "userID", userID, "err", err)
			return ErrInvalidPIN
		}
		if count >= maxPINFailures {
			until := time.Now().Add(pinLockDuration)
			if err := svc.writer.Lock(ctx, userID, until, "too many failed PIN attempts"); err != nil {
				logger.Log.Errorw("failed to lock account", "userID", userID, "err", err)
			}
			logger.Log.Warnw("account locked after PIN failures", "userID", userID, "until", until)
			return ErrAccountLocked
		}
		return ErrInvalidPIN
	}

	if err := svc.pinAttempts.Save(ctx, userID, true); err != nil {
		logger.Log.Errorw("failed to log PIN attempt", "userID", userID, "err", err)
	}
	if err := svc.writer.ResetFailedPIN(ctx, userID); err != nil {
		logger.Log.Errorw("failed to reset PIN failures", "userID", userID, "err", err)
	}

	return nil
}
