package config

type AppConfig struct {
	APIPort     string `env:"PORT,required" envDefault:"12222"`
	RabbitMQURL string `env:"RABBITMQ_URL"`
	// MaxPartBytes caps the attachment, the OCR text and each form field separately. 0 is unbounded.
	MaxPartBytes     int64 `env:"MAX_PART_BYTES" envDefault:"0"`
	ReadTimeoutSecs  int   `env:"HTTP_READ_TIMEOUT_SECONDS" envDefault:"60"`
	WriteTimeoutSecs int   `env:"HTTP_WRITE_TIMEOUT_SECONDS" envDefault:"60"`
}

type NotestackDatabaseConfig struct {
	Host            string `env:"NOTESTACK_POSTGRES_HOST,required"`
	Port            string `env:"NOTESTACK_POSTGRES_PORT,required"`
	User            string `env:"NOTESTACK_POSTGRES_USER,required"`
	DBName          string `env:"NOTESTACK_POSTGRES_DB_NAME,required"`
	Password        string `env:"NOTESTACK_POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"NOTESTACK_POSTGRES_DB_MAX_CONN"`
	MaxIdleConn     int    `env:"NOTESTACK_POSTGRES_DB_MAX_IDLE_CONN"`
	ConnMaxLifetime int    `env:"NOTESTACK_POSTGRES_DB_CONN_MAX_LIFETIME"`
	LogLevel        string `env:"NOTESTACK_POSTGRES_LOG_LEVEL" envDefault:"WARN"`
	SSLMode         string `env:"NOTESTACK_POSTGRES_SSL_MODE" envDefault:"disable"`
}

// StorageConfig selects Cloudflare R2 when an account id is set, plain S3 otherwise.
type StorageConfig struct {
	R2AccountID     string `env:"CLOUDFLARE_R2_ACCOUNT_ID"`
	AWSRegion       string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"STORAGE_ACCESS_KEY_ID,required"`
	AccessKeySecret string `env:"STORAGE_ACCESS_KEY_SECRET,required"`
	ScanBucket      string `env:"BUCKET_NAME_SCANS" envDefault:"scans"`
	IsPublic        bool   `env:"STORAGE_PUBLIC" envDefault:"false"`
}

func (c *StorageConfig) UseR2() bool {
	return c.R2AccountID != ""
}
