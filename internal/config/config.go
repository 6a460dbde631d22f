package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const tokenParameterName = "/svitlo-monitor-bot/prod/telegram-token"

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/svitlo-monitor.db"`

	APIURL       string `envconfig:"API_URL" required:"true"`
	ScrapeURL    string `envconfig:"SCRAPE_URL"`
	ScrapeRegion string `envconfig:"SCRAPE_REGION"`

	UpdateInterval time.Duration `envconfig:"UPDATE_INTERVAL" default:"5m"`
	FetchTimeout   time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`

	MorningDigestHour int           `envconfig:"MORNING_DIGEST_HOUR" default:"6"`
	BackupHour        int           `envconfig:"BACKUP_HOUR" default:"3"`
	BroadcastPause    time.Duration `envconfig:"BROADCAST_PAUSE" default:"50ms"`

	AdminChatID int64  `envconfig:"ADMIN_CHAT_ID"`
	Location    string `envconfig:"LOCATION" default:"Europe/Kyiv"`

	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`

	CalendarEnabled         bool   `envconfig:"CALENDAR_ENABLED" default:"false"`
	CalendarID              string `envconfig:"CALENDAR_ID"`
	CalendarCredentialsPath string `envconfig:"CALENDAR_CREDENTIALS_PATH"`
	CalendarRegion          string `envconfig:"CALENDAR_REGION"`
	CalendarQueue           string `envconfig:"CALENDAR_QUEUE"`
}

// New reads configuration from the environment. Outside dev mode the Telegram
// token comes from SSM Parameter Store instead of the environment.
func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev {
		return res, nil
	}

	token, err := getSSMToken(ctx)
	if err != nil {
		return nil, err
	}
	res.TelegramToken = token

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(tokenParameterName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM token not found")
	}

	return *param.Parameter.Value, nil
}
