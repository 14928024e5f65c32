package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Minio      *MinIOCfg
	Http       *HTTPConfig
	Grpc       *GRPCConfig
	Db         *PGDBCfg
	Redis      *RedisCfg
	Kafka      *KafkaCfg
	Backend    *BackendCfg
	Storefront *StorefrontCfg
	Delivery   *DeliveryCfg
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
	OutboxBatchSize   int
	OutboxPollPeriod  time.Duration
}

type MinIOCfg struct {
	Endpoint      string        // Адрес MinIO
	BucketName    string        // Бакет с картинками меню
	RootUser      string        // Пользователь MinIO
	RootPassword  string        // Пароль MinIO
	UseSSL        bool          // Подключение по TLS
	PublicBaseURL string        // Префикс для путей вида /uploads/...
	PresignTTL    time.Duration // Время жизни подписанной ссылки
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type PGDBCfg struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MaxConns       int32
	MigrationsPath string
}

type RedisCfg struct {
	Addr          string
	Password      string
	User          string
	DB            int
	MaxRetries    int
	DialTimeout   time.Duration
	Timeout       time.Duration
	CartTTL       time.Duration
	SessionTTL    time.Duration
	CatalogTTL    time.Duration
	SubmitLockTTL time.Duration
}

// BackendCfg — адрес API меню и заказов, которым пользуется витрина.
type BackendCfg struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
	RetryMax   time.Duration
}

type StorefrontCfg struct {
	Location        *time.Location
	DefaultLanguage string
}

// DeliveryCfg — тарифы доставки и адрес сервиса маршрутов.
type DeliveryCfg struct {
	OSRMURL            string
	Timeout            time.Duration
	BaseRadiusKm       float64
	BasePrice          decimal.Decimal
	PricePerKm         decimal.Decimal
	StraightLineFactor float64
}

// Load подгружает .env (если он есть) и собирает конфигурацию из окружения.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to read .env file: %v", err)
	}

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	backend, err := loadBackendCfg(http.Port)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	storefront, err := loadStorefrontCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	delivery, err := loadDeliveryCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Minio:      minio,
		Http:       http,
		Grpc:       loadGRPCConfig(),
		Db:         db,
		Redis:      redis,
		Kafka:      kafka,
		Backend:    backend,
		Storefront: storefront,
		Delivery:   delivery,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
		defaultBatchSize         = 100
		defaultPollPeriod        = 5 * time.Second
	)

	brokerStr := os.Getenv("KAFKA_BROKERS")
	if brokerStr == "" {
		return nil, fmt.Errorf("KAFKA_BROKERS environment variable is required")
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		return nil, fmt.Errorf("KAFKA_TOPIC environment variable is required")
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	batchSize, err := parseIntEnv("OUTBOX_BATCH_SIZE", defaultBatchSize)
	if err != nil {
		return nil, e.Wrap("OUTBOX_BATCH_SIZE", err)
	}

	pollPeriod, err := parseDurationEnv("OUTBOX_POLL_PERIOD", defaultPollPeriod)
	if err != nil {
		return nil, e.Wrap("OUTBOX_POLL_PERIOD", err)
	}

	return &KafkaCfg{
		Brokers:           splitList(brokerStr),
		Topic:             topic,
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
		OutboxBatchSize:   batchSize,
		OutboxPollPeriod:  pollPeriod,
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL     = false
		defaultEndpoint   = "minio:9000"
		defaultBucket     = "menu-images"
		defaultPresignTTL = time.Hour
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	presignTTL, err := parseDurationEnv("MINIO_PRESIGN_TTL", defaultPresignTTL)
	if err != nil {
		log.Errorf(err, "invalid MINIO_PRESIGN_TTL")
		return nil, err
	}

	return &MinIOCfg{
		Endpoint:      getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:    getEnvOrDefault("BUCKET_NAME", defaultBucket),
		RootUser:      getEnv("MINIO_ROOT_USER"),
		RootPassword:  getEnv("MINIO_ROOT_PASSWORD"),
		UseSSL:        useSSL,
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL"), "/"),
		PresignTTL:    presignTTL,
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost           = "localhost"
		defaultPort           = "5432"
		defaultSSLMode        = "disable"
		defaultMaxConns       = 10
		defaultMigrationsPath = "db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil {
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	return &PGDBCfg{
		Host:           getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:           getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:           user,
		Password:       password,
		DBName:         dbName,
		SSLMode:        getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MaxConns:       int32(maxConns),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", defaultMigrationsPath),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr          = "localhost:6379"
		defaultDB            = 0
		defaultMaxRetries    = 3
		defaultDialTimeout   = 5 * time.Second
		defaultReadTimeout   = 3 * time.Second
		defaultWriteTimeout  = 3 * time.Second
		defaultCartTTL       = 30 * 24 * time.Hour
		defaultSessionTTL    = 30 * 24 * time.Hour
		defaultCatalogTTL    = 3 * time.Minute
		defaultSubmitLockTTL = 30 * time.Second
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	cartTTL, err := parseDurationEnv("CART_TTL", defaultCartTTL)
	if err != nil {
		log.Errorf(err, "invalid CART_TTL")
		return nil, err
	}

	sessionTTL, err := parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		log.Errorf(err, "invalid SESSION_TTL")
		return nil, err
	}

	catalogTTL, err := parseDurationEnv("CATALOG_TTL", defaultCatalogTTL)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_TTL")
		return nil, err
	}

	submitLockTTL, err := parseDurationEnv("SUBMIT_LOCK_TTL", defaultSubmitLockTTL)
	if err != nil {
		log.Errorf(err, "invalid SUBMIT_LOCK_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:          getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:      getEnv("REDIS_PASSWORD"),
		User:          getEnv("REDIS_USER"),
		DB:            db,
		MaxRetries:    maxRetries,
		DialTimeout:   dialTimeout,
		Timeout:       timeout,
		CartTTL:       cartTTL,
		SessionTTL:    sessionTTL,
		CatalogTTL:    catalogTTL,
		SubmitLockTTL: submitLockTTL,
	}, nil
}

func loadBackendCfg(httpPort string) (*BackendCfg, error) {
	const (
		defaultTimeout    = 10 * time.Second
		defaultMaxRetries = 2
		defaultRetryBase  = 200 * time.Millisecond
		defaultRetryMax   = 2 * time.Second
	)

	timeout, err := parseDurationEnv("BACKEND_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, e.Wrap("BACKEND_TIMEOUT", err)
	}

	maxRetries, err := parseIntEnv("BACKEND_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		return nil, e.Wrap("BACKEND_MAX_RETRIES", err)
	}

	// По умолчанию витрина ходит в API этого же процесса.
	baseURL := getEnvOrDefault("BACKEND_URL", "http://localhost:"+httpPort+"/api/v1")

	return &BackendCfg{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Timeout:    timeout,
		MaxRetries: maxRetries,
		RetryBase:  defaultRetryBase,
		RetryMax:   defaultRetryMax,
	}, nil
}

func loadStorefrontCfg() (*StorefrontCfg, error) {
	const (
		defaultTimezone = "Asia/Tashkent"
		defaultLanguage = "ru"
	)

	loc, err := time.LoadLocation(getEnvOrDefault("STORE_TIMEZONE", defaultTimezone))
	if err != nil {
		return nil, e.Wrap("STORE_TIMEZONE", err)
	}

	lang := getEnvOrDefault("DEFAULT_LANGUAGE", defaultLanguage)
	if lang != "ru" && lang != "uz" {
		return nil, e.Wrap("DEFAULT_LANGUAGE", e.ErrIncorrectEnvVariable)
	}

	return &StorefrontCfg{
		Location:        loc,
		DefaultLanguage: lang,
	}, nil
}

func loadDeliveryCfg() (*DeliveryCfg, error) {
	const (
		defaultOSRMURL            = "https://router.project-osrm.org"
		defaultTimeout            = 5 * time.Second
		defaultBaseRadiusKm       = "2"
		defaultBasePrice          = "5000"
		defaultPricePerKm         = "2000"
		defaultStraightLineFactor = "1.3"
	)

	timeout, err := parseDurationEnv("OSRM_TIMEOUT", defaultTimeout)
	if err != nil {
		return nil, e.Wrap("OSRM_TIMEOUT", err)
	}

	radius, err := strconv.ParseFloat(getEnvOrDefault("DELIVERY_BASE_RADIUS_KM", defaultBaseRadiusKm), 64)
	if err != nil {
		return nil, e.Wrap("DELIVERY_BASE_RADIUS_KM", e.ErrIncorrectEnvVariable)
	}

	factor, err := strconv.ParseFloat(getEnvOrDefault("DELIVERY_STRAIGHT_LINE_FACTOR", defaultStraightLineFactor), 64)
	if err != nil {
		return nil, e.Wrap("DELIVERY_STRAIGHT_LINE_FACTOR", e.ErrIncorrectEnvVariable)
	}

	basePrice, err := decimal.NewFromString(getEnvOrDefault("DELIVERY_BASE_PRICE", defaultBasePrice))
	if err != nil {
		return nil, e.Wrap("DELIVERY_BASE_PRICE", e.ErrIncorrectEnvVariable)
	}

	perKm, err := decimal.NewFromString(getEnvOrDefault("DELIVERY_PRICE_PER_KM", defaultPricePerKm))
	if err != nil {
		return nil, e.Wrap("DELIVERY_PRICE_PER_KM", e.ErrIncorrectEnvVariable)
	}

	return &DeliveryCfg{
		OSRMURL:            strings.TrimRight(getEnvOrDefault("OSRM_URL", defaultOSRMURL), "/"),
		Timeout:            timeout,
		BaseRadiusKm:       radius,
		BasePrice:          basePrice,
		PricePerKm:         perKm,
		StraightLineFactor: factor,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
