package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log       Log       `yaml:"log"`
	Server    Server    `yaml:"server"`
	Assistant Assistant `yaml:"assistant"`
	TTS       TTS       `yaml:"tts"`
	WhatsApp  WhatsApp  `yaml:"whatsapp"`
}

type Server struct {
	// Listen address of the HTTP API
	Addr string `yaml:"addr" example:":8080"`
}

type Assistant struct {
	// OpenAI-compatible base url, leave empty to run on scripted replies only
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1"`
	// API token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// Model name
	Model string `yaml:"model" example:"gpt-4o-mini"`
}

type TTS struct {
	// ElevenLabs API key, leave empty to disable the /api/tts proxy
	APIKey string `yaml:"api_key" example:"xi-abc123def456ghi789jkl012mno345"`
	// ElevenLabs voice ID
	VoiceID string `yaml:"voice_id" example:"21m00Tcm4TlvDq8ikWAM"`
}

type WhatsApp struct {
	// Verification token for the Meta webhook handshake, you pick it yourself
	VerifyToken string `yaml:"verify_token" example:"shopbot-ai-verify-2026"`
	// Meta Cloud API access token
	AccessToken string `yaml:"access_token" example:"EAAG1234567890abcdefghijklmnopqrstuvwxyz"`
	// WhatsApp Business phone number ID
	PhoneNumberID string `yaml:"phone_number_id" example:"123456789012345"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":8080"
	}
	if result.TTS.VoiceID == "" {
		// Rachel (multilingual)
		result.TTS.VoiceID = "21m00Tcm4TlvDq8ikWAM"
	}
	if result.WhatsApp.VerifyToken == "" {
		result.WhatsApp.VerifyToken = "shopbot-ai-verify-2026"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
