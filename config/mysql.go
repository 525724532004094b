package config

import (
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// MySQLOption is one DSN parameter, e.g. parseTime=true
type MySQLOption struct {
	Key   string `mapstructure:"key"`
	Value string `mapstructure:"value"`
}

// MySQLConfig for configuring MySQL
type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	Database string `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`

	Options []MySQLOption `mapstructure:"options"`
}

func (c MySQLConfig) driverConfig() *mysql.Config {
	conf := mysql.NewConfig()
	conf.User = c.Username
	conf.Passwd = c.Password
	conf.Net = "tcp"
	conf.Addr = fmt.Sprintf("%s:%d", c.Host, c.Port)
	conf.DBName = c.Database

	if len(c.Options) > 0 {
		conf.Params = make(map[string]string, len(c.Options))
		for _, o := range c.Options {
			conf.Params[o.Key] = o.Value
		}
	}
	return conf
}

// DSN returns the go-sql-driver data source name, options sorted by key
func (c MySQLConfig) DSN() string {
	return c.driverConfig().FormatDSN()
}

// MustConnect opens the pool and pings it, panics on failure
func (c MySQLConfig) MustConnect(logger *zap.Logger) *sqlx.DB {
	db := sqlx.MustConnect("mysql", c.DSN())

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	if c.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(c.ConnMaxLifetime)
	}

	logger.Info("connected to mysql",
		zap.String("addr", fmt.Sprintf("%s:%d", c.Host, c.Port)),
		zap.String("database", c.Database),
		zap.Int("maxOpenConns", c.MaxOpenConns),
		zap.Int("maxIdleConns", c.MaxIdleConns),
		zap.Duration("connMaxLifetime", c.ConnMaxLifetime),
	)
	return db
}
