package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,required,notEmpty"`

	// Completion backend. Leave both keys empty to disable /ask.
	AIProvider     string `env:"AI_PROVIDER" envDefault:"gemini"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`
	GeminiModel    string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`
	OpenAIAPIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL  string `env:"AI_BASE_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	OpenAIModel    string `env:"AI_MODEL" envDefault:"gpt-4o-mini"`
	AISystemPrompt string `env:"AI_SYSTEM_PROMPT" envDefault:"You are a dry-witted bartender answering questions for the regulars. Keep it short."`
	AITimeoutSec   int    `env:"AI_TIMEOUT_SECONDS" envDefault:"25"`

	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	// Passive behaviors. Empty channel list disables the behavior,
	// empty keyword list matches every message in allowed channels.
	ReactChannels    []string `env:"REACT_CHANNELS" envSeparator:","`
	ReactKeywords    []string `env:"REACT_KEYWORDS" envSeparator:","`
	ReactEmojis      []string `env:"REACT_EMOJIS" envSeparator:"," envDefault:"🍺,🍻"`
	ReactCooldownSec int      `env:"REACT_COOLDOWN_SECONDS" envDefault:"60"`

	ReplyChannels    []string `env:"REPLY_CHANNELS" envSeparator:","`
	ReplyKeywords    []string `env:"REPLY_KEYWORDS" envSeparator:","`
	ReplyCooldownSec int      `env:"REPLY_COOLDOWN_SECONDS" envDefault:"120"`
	ReplyChance      int      `env:"REPLY_CHANCE" envDefault:"15"`

	HeartbeatAddr string `env:"HEARTBEAT_ADDR" envDefault:":8787"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSec) * time.Second
}

func (c *Config) ReactCooldown() time.Duration {
	return time.Duration(c.ReactCooldownSec) * time.Second
}

func (c *Config) ReplyCooldown() time.Duration {
	return time.Duration(c.ReplyCooldownSec) * time.Second
}
