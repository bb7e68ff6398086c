package config

// Config 配置主体
type Config struct {
	Server                    ServerConfig              `mapstructure:"server"`
	DB                        DBConfig                  `mapstructure:"database"`
	Redis                     RedisConfig               `mapstructure:"redis"`
	Mongo                     MongoConfig               `mapstructure:"mongo"`
	Elastic                   ElasticConfig             `mapstructure:"elastic"`
	Kafka                     KafkaConfig               `mapstructure:"kafka"`
	KafkaNotificationProducer KafkaNotificationProducer `mapstructure:"kafka_notification_producer"`
	KafkaNotificationConsumer KafkaNotificationConsumer `mapstructure:"kafka_notification_consumer"`
	JWT                       JWTConfig                 `mapstructure:"jwt"`
	Logstash                  LogstashConfig            `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig Mongo配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// ElasticConfig Elastic配置
type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

// ElasticIndices Elastic索引
type ElasticIndices struct {
	UserIndex    string `mapstructure:"user_index"`
	PostIndex    string `mapstructure:"post_index"`
	HashtagIndex string `mapstructure:"hashtag_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaNotificationProducer struct {
	Topic string `mapstructure:"topic"`
}

type KafkaNotificationConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// JWTConfig 鉴权配置
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
	Expire int    `mapstructure:"expire"` // 小时
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
