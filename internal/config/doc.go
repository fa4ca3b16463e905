// Package config provides configuration parsing for the vroute tool and
// for applications that build their route registry from a file.
//
// The configuration is stored in vroute.json (or vroute.toml) at the
// project root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "foldCase": false,
//	  "routes": ["home", "settings", "orders.detail"],
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "vango",
//	    "subsystem": "routing"
//	  },
//	  "tracing": {
//	    "tracerName": "vango/routing"
//	  }
//	}
//
// The same settings in TOML:
//
//	foldCase = false
//	routes = ["home", "settings"]
//
//	[log]
//	level = "debug"
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger, _ := cfg.Logger(os.Stderr)
//	routes := routing.New(cfg.RegistryOptions(prometheus.DefaultRegisterer, logger)...)
package config
