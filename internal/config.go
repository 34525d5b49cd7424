// v2
// file: internal/config.go
package internal

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	InputDir        string
	RefreshInterval time.Duration
	ListenAddr      string
	Brokers         []string
	SnapshotTopic   string
}

// LoadProps reads a java-style properties file. A missing file yields the
// defaults; GEOPULSE_INPUT_DIR and GEOPULSE_LISTEN_ADDR override either way.
func LoadProps(path string) Config {
	cfg := Config{
		InputDir:        "data/input",
		RefreshInterval: 10 * time.Second,
		ListenAddr:      ":8080",
		Brokers:         nil,
		SnapshotTopic:   "geopulse.snapshots",
	}
	f, err := os.Open(path)
	if err != nil {
		return applyEnv(cfg)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.TrimSpace(kv[0])
		v := strings.TrimSpace(kv[1])
		switch strings.ToLower(k) {
		case "input_dir":
			if v != "" {
				cfg.InputDir = v
			}
		case "refresh_interval_seconds":
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.RefreshInterval = time.Duration(n) * time.Second
			}
		case "listen_addr":
			if v != "" {
				cfg.ListenAddr = v
			}
		case "brokers":
			parts := strings.Split(v, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				p = strings.TrimSpace(p)
				if p != "" {
					out = append(out, p)
				}
			}
			cfg.Brokers = out
		case "snapshot_topic":
			if v != "" {
				cfg.SnapshotTopic = v
			}
		}
	}
	return applyEnv(cfg)
}

func applyEnv(cfg Config) Config {
	if d := strings.TrimSpace(os.Getenv("GEOPULSE_INPUT_DIR")); d != "" {
		cfg.InputDir = d
	}
	if a := strings.TrimSpace(os.Getenv("GEOPULSE_LISTEN_ADDR")); a != "" {
		cfg.ListenAddr = a
	}
	return cfg
}
