// Package config provides configuration parsing for jst projects.
//
// The configuration is stored in jst.json, jst.yaml or jst.yml at the
// project root. Every field is optional; missing values take the defaults
// from New.
//
// # Configuration File Structure
//
//	name: todo
//	render:
//	  indent: 2
//	  prefix: jsto
//	log:
//	  level: debug
//	  format: text
//	serve:
//	  host: localhost
//	  port: 3000
//	  tick: 500ms
//	publish:
//	  output: dist
//	  bucket: my-site
//	  keyPrefix: preview/
//	  region: eu-west-1
//	metrics:
//	  enabled: true
//	  namespace: jst
//	tracing:
//	  tracerName: jst
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
