package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Env         string
	Debug       bool
	AppName     string
	DataDir     string
	TeacherFile string
	StudentFile string
	CourseFile  string
	QAFile      string
	SeedDemo    bool
	HistoryFile string
}

// Path returns the location of the data file `name` inside DataDir.
func (c *Config) Path(name string) string {
	return filepath.Join(c.DataDir, name)
}

// LoadConfig reads the configuration from defaults, an optional `config/.env.<env>` file
// and the environment (prefixed with the env name, eg. DEV_DATADIR).
func LoadConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "QA Desk")
	conf.SetDefault("dataDir", ".")
	conf.SetDefault("teacherFile", "teachers.dat")
	conf.SetDefault("studentFile", "students.dat")
	conf.SetDefault("courseFile", "courses.dat")
	conf.SetDefault("qaFile", "qa_records.dat")
	conf.SetDefault("seedDemo", true)
	conf.SetDefault("historyFile", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, PROD
	switch env {
	case "":
		env = "DEV"
	case "PROD":
		conf.SetDefault("debug", false)
	case "TEST":
		conf.SetDefault("seedDemo", false)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:         env,
		Debug:       conf.GetBool("debug"),
		AppName:     conf.GetString("appName"),
		DataDir:     conf.GetString("dataDir"),
		TeacherFile: conf.GetString("teacherFile"),
		StudentFile: conf.GetString("studentFile"),
		CourseFile:  conf.GetString("courseFile"),
		QAFile:      conf.GetString("qaFile"),
		SeedDemo:    conf.GetBool("seedDemo"),
		HistoryFile: conf.GetString("historyFile"),
	}, nil
}
