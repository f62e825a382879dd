package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	LLM       LLMConfig
	Speech    SpeechConfig
	Knowledge KnowledgeConfig
	Cache     CacheConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// LLMConfig selects and configures the completion backend.
// Source is either "http" (bare chat endpoint) or "ollama".
type LLMConfig struct {
	Source      string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
	TopP        float64
	HTTP        HTTPLLMConfig
	Ollama      OllamaConfig
}

type HTTPLLMConfig struct {
	BaseURL string
	Model   string
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type SpeechConfig struct {
	TokenURL     string
	RecognizeURL string
	ClientAuth   string // base64 basic credentials for the token endpoint
	Scope        string
	FFmpegPath   string
	Timeout      time.Duration
}

// KnowledgeConfig points at the on-disk knowledge base.
// BaseDir holds the general Q&A context, SummaryDir the per-module summaries.
type KnowledgeConfig struct {
	BaseDir    string
	SummaryDir string
}

type CacheConfig struct {
	AnswerTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			BodyLimit:    viper.GetInt("server.body_limit"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			Name:     viper.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Source:      viper.GetString("llm.source"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			MaxTokens:   viper.GetInt("llm.max_tokens"),
			Temperature: viper.GetFloat64("llm.temperature"),
			TopP:        viper.GetFloat64("llm.top_p"),
			HTTP: HTTPLLMConfig{
				BaseURL: viper.GetString("llm.http.base_url"),
				Model:   viper.GetString("llm.http.model"),
			},
			Ollama: OllamaConfig{
				ServerURL: viper.GetString("llm.ollama.server_url"),
				Model:     viper.GetString("llm.ollama.model"),
			},
		},
		Speech: SpeechConfig{
			TokenURL:     viper.GetString("speech.token_url"),
			RecognizeURL: viper.GetString("speech.recognize_url"),
			ClientAuth:   viper.GetString("speech.client_auth"),
			Scope:        viper.GetString("speech.scope"),
			FFmpegPath:   viper.GetString("speech.ffmpeg_path"),
			Timeout:      viper.GetDuration("speech.timeout") * time.Second,
		},
		Knowledge: KnowledgeConfig{
			BaseDir:    viper.GetString("knowledge.base_dir"),
			SummaryDir: viper.GetString("knowledge.summary_dir"),
		},
		Cache: CacheConfig{
			AnswerTTL: viper.GetDuration("cache.answer_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.Name = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if llmBase := os.Getenv("LLM_BASE_URL"); llmBase != "" {
		config.LLM.HTTP.BaseURL = llmBase
	}
	if speechAuth := os.Getenv("SPEECH_CLIENT_AUTH"); speechAuth != "" {
		config.Speech.ClientAuth = speechAuth
	}

	return config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8021)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.body_limit", 10*1024*1024)
	viper.SetDefault("llm.source", "http")
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("llm.max_tokens", 4096)
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.top_p", 0.9)
	viper.SetDefault("speech.ffmpeg_path", "ffmpeg")
	viper.SetDefault("speech.timeout", 30)
	viper.SetDefault("knowledge.base_dir", "data/knowledge")
	viper.SetDefault("knowledge.summary_dir", "data/data_summary")
	viper.SetDefault("cache.answer_ttl", 3600)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
}

func (c *Config) GetDSN() string {
	// MySQL DSN format: user:password@tcp(host:port)/dbname
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	)
}
