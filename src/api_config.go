package main

import (
	"directory-api/pkg/logger"
	"directory-api/pkg/rabbitmq"
)

type ApiConfigJson struct {
	LoggerConf   logger.LoggerConfigJson     `json:"logger"`
	RabbitmqConf rabbitmq.RabbitmqConfigJson `json:"rabbitmq"`
	RestConf     ApiClientRestConfigJson     `json:"rest"`
	DatabaseConf ApiClientDatabaseConfigJson `json:"database"`
}

func (acj ApiConfigJson) ConvertToDomain() ApiConfig {
	return ApiConfig{
		LoggerConf:   acj.LoggerConf.ConvertToDomain(),
		RabbitmqConf: acj.RabbitmqConf.ConvertToDomain(),
		RestConf:     acj.RestConf.ConvertToDomain(),
		DatabaseConf: acj.DatabaseConf.ConvertToDomain(),
	}
}

type ApiConfig struct {
	LoggerConf   logger.LoggerConfig
	RabbitmqConf rabbitmq.RabbitmqConfig
	RestConf     ApiClientRestConfig
	DatabaseConf ApiClientDatabaseConfig
}

func (ac ApiConfig) GetLoggerConfig() logger.LoggerConfig {
	return ac.LoggerConf
}

func (ac ApiConfig) GetRabbitmqConfig() rabbitmq.RabbitmqConfig {
	return ac.RabbitmqConf
}

func (ac ApiConfig) GetRestApiPort() uint16 {
	return ac.RestConf.Port
}

func (ac ApiConfig) GetDatabaseDriver() string {
	return ac.DatabaseConf.Driver
}

func (ac ApiConfig) GetDatabaseConnectionString() string {
	return ac.DatabaseConf.ConnectionString
}

func (ac ApiConfig) ShouldRunMigrations() bool {
	return ac.DatabaseConf.RunMigrations
}

func (ac ApiConfig) ShouldSeedDevData() bool {
	return ac.DatabaseConf.SeedDevData
}

type ApiClientRestConfigJson struct {
	Port uint16 `json:"port"`
}

type ApiClientRestConfig struct {
	Port uint16
}

func (acrcj ApiClientRestConfigJson) ConvertToDomain() ApiClientRestConfig {
	return ApiClientRestConfig{
		Port: acrcj.Port,
	}
}

type ApiClientDatabaseConfigJson struct {
	Driver           string `json:"driver"`
	ConnectionString string `json:"connection_string"`
	RunMigrations    bool   `json:"run_migrations"`
	SeedDevData      bool   `json:"seed_dev_data"`
}

type ApiClientDatabaseConfig struct {
	Driver           string
	ConnectionString string
	RunMigrations    bool
	SeedDevData      bool
}

func (acdcj ApiClientDatabaseConfigJson) ConvertToDomain() ApiClientDatabaseConfig {
	return ApiClientDatabaseConfig{
		Driver:           acdcj.Driver,
		ConnectionString: acdcj.ConnectionString,
		RunMigrations:    acdcj.RunMigrations,
		SeedDevData:      acdcj.SeedDevData,
	}
}
