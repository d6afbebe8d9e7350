package main

import (
	"os"

	"github.com/iver-wharf/wharf-core/pkg/config"
)

// Config holds all configurable settings.
//
// The config is read in the following order:
//
// 1. File: /etc/iver-wharf/wharf-pipeline-utils/config.yml
//
// 2. File: ./wharf-pipeline-utils-config.yml
//
// 3. File from environment variable: WHARF_CONFIG
//
// 4. Environment variables, prefixed with WHARF_
//
// Each inner struct is represented as a deeper field in the different
// configs. For YAML they represent deeper nested maps. For environment
// variables they are joined together by underscores.
type Config struct {
	HTTP HTTPConfig
	CA   CertConfig
	// SCM holds fallback settings for the SCM-Manager endpoint, used when a
	// pipeline request omits them.
	SCM SCMConfig
	// Broker holds settings for the ActiveMQ broker's Jolokia endpoint.
	Broker BrokerConfig
}

// HTTPConfig holds settings for the HTTP server.
type HTTPConfig struct {
	CORS CORSConfig

	// BindAddress is the IP-address and port, separated by a colon, to bind
	// the HTTP server to.
	//
	// Added in v1.0.0.
	BindAddress string
}

// CORSConfig holds settings for the HTTP server's CORS settings.
type CORSConfig struct {
	// AllowAllOrigins enables CORS and allows all hostnames and URLs in the
	// HTTP request origins when set to true.
	//
	// Added in v1.0.0.
	AllowAllOrigins bool
}

// CertConfig holds settings for certificates verification used when talking
// to remote services over HTTPS.
type CertConfig struct {
	// CertsFile points to a file of one or more PEM-formatted certificates to
	// use in addition to the certificates from the system.
	//
	// Added in v1.0.0.
	CertsFile string
}

// SCMConfig holds fallback settings for the SCM-Manager endpoint. A pipeline
// request may override both values. Immutable after the service has started.
type SCMConfig struct {
	// URL is the base URL of the SCM-Manager REST API, commonly ending in
	// "/api".
	//
	// Added in v1.0.0.
	URL string

	// Token is the bearer token used to authenticate against SCM-Manager.
	//
	// Added in v1.0.0.
	Token string
}

// BrokerConfig holds settings for the ActiveMQ broker's Jolokia endpoint.
// Immutable after the service has started.
type BrokerConfig struct {
	// Host is the hostname of the ActiveMQ broker.
	//
	// Added in v1.0.0.
	Host string

	// Port is the port of the broker's web console, where the Jolokia bridge
	// is served.
	//
	// Added in v1.0.0.
	Port int

	// Name is the broker name used in MBean queries. ActiveMQ names the
	// default broker after the machine's hostname, commonly "localhost".
	//
	// Added in v1.0.0.
	Name string

	// UserName is an optional HTTP basic auth user name for the Jolokia
	// endpoint.
	//
	// Added in v1.0.0.
	UserName string

	// Password is the HTTP basic auth password paired with UserName.
	//
	// Added in v1.0.0.
	Password string
}

// DefaultConfig is the hard-coded default values for the configs.
var DefaultConfig = Config{
	HTTP: HTTPConfig{
		BindAddress: "0.0.0.0:8080",
	},
	Broker: BrokerConfig{
		Host: "localhost",
		Port: 8161,
		Name: "localhost",
	},
}

func loadConfig() (Config, error) {
	cfgBuilder := config.NewBuilder(DefaultConfig)
	cfgBuilder.AddConfigYAMLFile("/etc/iver-wharf/wharf-pipeline-utils/config.yml")
	cfgBuilder.AddConfigYAMLFile("wharf-pipeline-utils-config.yml")
	if cfgFile, ok := os.LookupEnv("WHARF_CONFIG"); ok {
		cfgBuilder.AddConfigYAMLFile(cfgFile)
	}
	cfgBuilder.AddEnvironmentVariables("WHARF")

	var cfg Config
	err := cfgBuilder.Unmarshal(&cfg)
	return cfg, err
}
