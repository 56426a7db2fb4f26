package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	// บัญชีผู้ดูแลระบบฉีดเข้ามาจาก config ไม่ฝังเป็นค่าคงที่ในโค้ด
	// ระบบเดิมเทียบรหัสผ่านแบบ plaintext และที่นี่ยังคงพฤติกรรมเดิมไว้
	Admin struct {
		Username string `env:"USERNAME" envDefault:"admin"`
		Password string `env:"PASSWORD,required"`
	} `envPrefix:"ADMIN_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"1209600"` // 14 วัน (หน่วยวินาที)
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	// รายชื่อเจ้าหน้าที่ที่ไม่ถูกนับยอดเวรเช้าปกติ (พยาบาลอาวุโสสองคน)
	// เป็นข้อมูลตั้งค่าได้ ไม่ใช่เงื่อนไขตายตัวในโค้ด
	Schedule struct {
		MorningExemptIDs []string `env:"MORNING_EXEMPT_IDS" envDefault:"n1,n2"`
	} `envPrefix:"SCHEDULE_"`
	Redis struct {
		Host                string `env:"HOST" envDefault:"localhost"`
		Port                int    `env:"PORT" envDefault:"6379"`
		Password            string `env:"PASSWORD,required"`
		OperationExpiration int    `env:"OPERATION_EXPIRATION" envDefault:"10"`
		SnapshotExpiration  int    `env:"SNAPSHOT_EXPIRATION" envDefault:"300"` // อายุ cache ของตารางที่เผยแพร่แล้ว (วินาที)
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		Recipients []string `env:"RECIPIENTS"`
		SMTP       struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Seed struct {
		Account struct {
			Password string `env:"PASSWORD" envDefault:"changeme"`
		} `envPrefix:"ACCOUNT_"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// คืนเฉพาะ error แรกเพื่อให้ log อ่านง่าย
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
