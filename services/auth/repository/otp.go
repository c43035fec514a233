package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/inviteflow/auth-service/internal/pkg/constants"
	"github.com/inviteflow/auth-service/internal/pkg/models"
)

// consumeOTPScript atomically checks the stored code and expiry and deletes
// the record on a match. Two concurrent consumes of the same code cannot
// both succeed: the check and the delete run as one script.
var consumeOTPScript = redis.NewScript(`
local val = redis.call('GET', KEYS[1])
if not val then
	return 0
end
local record = cjson.decode(val)
if record.code ~= ARGV[1] then
	return 0
end
if tonumber(record.expires_at) <= tonumber(ARGV[2]) then
	return 0
end
redis.call('DEL', KEYS[1])
return 1
`)

// StoreOTP persists a new OTP record for the email, replacing any prior
// record for that address in a single SET.
func (r *AuthRepo) StoreOTP(ctx context.Context, otp *models.OTP) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAuthOTP, otp.Email)
	ttl := time.Until(time.Unix(otp.ExpiresAt, 0))
	if ttl <= 0 {
		return fmt.Errorf("OTP expiry is not in the future")
	}

	if err := r.redisClient.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	return nil
}

// ConsumeOTP verifies and deletes the OTP record for the email iff the code
// matches and the record has not expired. Expiry is enforced here by
// comparing the stored timestamp against the current time; the key TTL is
// only a cleanup backstop.
func (r *AuthRepo) ConsumeOTP(ctx context.Context, email, code string) (bool, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, email)

	res, err := consumeOTPScript.Run(ctx, r.redisClient.Client, []string{key}, code, time.Now().Unix()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to consume OTP: %w", err)
	}

	return res == 1, nil
}

// HasLiveOTP reports whether an unexpired OTP record exists for the email,
// regardless of code.
func (r *AuthRepo) HasLiveOTP(ctx context.Context, email string) (bool, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, email)

	val, err := r.redisClient.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return false, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}

	return otp.ExpiresAt > time.Now().Unix(), nil
}

// InvalidateOTP unconditionally deletes any OTP record for the email
func (r *AuthRepo) InvalidateOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, email)

	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}

	return nil
}
