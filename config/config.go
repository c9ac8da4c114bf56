package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"os-scheduler/internal/workload"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFormat             string
	StorePath             string // empty disables run history
	Workload              workload.Config
}

const envPrefix = "SCHED"

func setDefaults(v *viper.Viper) {
	w := workload.DefaultConfig()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("store.path", "")
	v.SetDefault("workload.count", w.Count)
	v.SetDefault("workload.burst_min", w.BurstMin)
	v.SetDefault("workload.burst_max", w.BurstMax)
	v.SetDefault("workload.priority_min", w.PriorityMin)
	v.SetDefault("workload.priority_max", w.PriorityMax)
	v.SetDefault("workload.emergency", w.Emergency)
}

// Load reads path (or ./config.yaml when path is empty) on top of the
// defaults. A missing default file is not an error. SCHED_* environment
// variables override both, e.g. SCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		StorePath:             v.GetString("store.path"),
		Workload: workload.Config{
			Count:       v.GetInt("workload.count"),
			BurstMin:    v.GetInt("workload.burst_min"),
			BurstMax:    v.GetInt("workload.burst_max"),
			PriorityMin: v.GetInt("workload.priority_min"),
			PriorityMax: v.GetInt("workload.priority_max"),
			Emergency:   v.GetBool("workload.emergency"),
		},
	}, nil
}
