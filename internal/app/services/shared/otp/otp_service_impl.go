package otp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mbote-service/internal/app/contracts"
	"mbote-service/internal/pkg/constvars"
	"mbote-service/internal/pkg/exceptions"
	"mbote-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type otpService struct {
	redisRepo           contracts.RedisRepository
	notificationService contracts.NotificationService
	Log                 *zap.Logger
	smsLimiter          *rate.Limiter
	expiry              time.Duration
	maxIssuesPerHour    int
	senderName          string
}

var (
	otpServiceInstance contracts.OTPService
	onceOTPService     sync.Once
)

func NewOTPService(
	redisRepo contracts.RedisRepository,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
	expiryMinutes int,
	maxIssuesPerHour int,
	senderName string,
) contracts.OTPService {
	onceOTPService.Do(func() {
		otpServiceInstance = &otpService{
			redisRepo:           redisRepo,
			notificationService: notificationService,
			Log:                 logger,
			// One SMS per second across the process keeps the gateway happy.
			smsLimiter:       rate.NewLimiter(rate.Limit(1), 5),
			expiry:           time.Duration(expiryMinutes) * time.Minute,
			maxIssuesPerHour: maxIssuesPerHour,
			senderName:       senderName,
		}
	})
	return otpServiceInstance
}

func (s *otpService) Issue(ctx context.Context, phone string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("otpService.Issue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, phone),
	)

	if err := s.checkIssueQuota(ctx, phone); err != nil {
		return err
	}

	if !s.smsLimiter.Allow() {
		return exceptions.ErrOTPRateLimited(nil)
	}

	code, err := utils.GenerateOTP(constvars.OTP_LENGTH)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(constvars.RedisKeyOTPFormat, phone)
	if err := s.redisRepo.Set(ctx, key, code, s.expiry); err != nil {
		return err
	}

	message := fmt.Sprintf("%s: your verification code is %s. It expires in %d minutes.",
		s.senderName, code, int(s.expiry.Minutes()))
	err = s.notificationService.SendSMS(ctx, constvars.NotificationPatientOTPVerification, phone, message)
	if err != nil {
		s.Log.Error("otpService.Issue error dispatching SMS",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *otpService) Verify(ctx context.Context, phone, code string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("otpService.Verify called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPhoneKey, phone),
	)

	key := fmt.Sprintf(constvars.RedisKeyOTPFormat, phone)
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		return err
	}
	if raw == "" {
		return exceptions.ErrOTPExpiredOrInvalid(nil)
	}

	var stored string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if stored != code {
		return exceptions.ErrOTPExpiredOrInvalid(nil)
	}

	// Single use.
	return s.redisRepo.Delete(ctx, key)
}

// checkIssueQuota caps OTP dispatches per phone per hour. The counter's
// expiry starts at the first issue and is never extended, so the quota
// resets an hour after the first dispatch no matter how often the client
// retries.
func (s *otpService) checkIssueQuota(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constvars.RedisKeyOTPIssuesFormat, phone)
	count, err := s.redisRepo.Increment(ctx, key, time.Hour)
	if err != nil {
		return err
	}
	if count > int64(s.maxIssuesPerHour) {
		return exceptions.ErrOTPRateLimited(nil)
	}
	return nil
}
