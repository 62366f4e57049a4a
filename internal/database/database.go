package database

import (
	"time"

	"terminal-terrace/lms-service/config"
	"terminal-terrace/lms-service/internal/model"
	pkgdb "terminal-terrace/lms-service/pkg/database"

	"gorm.io/gorm"
)

var (
	PostgresDB *gorm.DB
	RedisDB    *pkgdb.RedisClient
)

func InitDatabase() {
	databaseConf := config.Conf.Database
	redisConf := config.Conf.Redis

	logLevel := databaseConf.LogLevel
	if logLevel == "" {
		logLevel = "silent"
	}

	var err error
	PostgresDB, err = pkgdb.InitPostgres(
		&pkgdb.PostgresConfig{
			ServiceName:     "lms-service",
			Username:        databaseConf.Username,
			Password:        databaseConf.Password,
			Host:            databaseConf.Host,
			Port:            databaseConf.Port,
			Database:        databaseConf.Database,
			SSLMode:         databaseConf.SSLMode,
			LogLevel:        logLevel,
			MaxIdleConns:    databaseConf.MaxIdleConns,
			MaxOpenConns:    databaseConf.MaxOpenConns,
			ConnMaxLifetime: time.Duration(databaseConf.MaxLifetime) * time.Second,
		},
	)

	if err != nil {
		panic(err)
	}

	// 迁移并预置内置角色
	if err = model.InitTable(PostgresDB); err != nil {
		panic(err)
	}

	// 初始化 Redis
	RedisDB, err = pkgdb.InitRedis(
		&pkgdb.RedisConfig{
			ServiceName: "lms-service",
			Host:        redisConf.Host,
			Port:        redisConf.Port,
			Password:    redisConf.Password,
			DB:          redisConf.DB,
			PoolSize:    redisConf.PoolSize,
		},
	)

	if err != nil {
		panic(err)
	}
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return PostgresDB
}
