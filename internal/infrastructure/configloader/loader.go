package configloader

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Params 控制配置加载的输入参数。
type Params struct {
	ConfPath string
}

const (
	defaultConfPath       = "configs/config.yaml"
	envConfPath           = "CONF_PATH"
	envDatabaseURL        = "DATABASE_URL"
	envPort               = "PORT"
	envServiceName        = "SERVICE_NAME"
	envServiceVersion     = "SERVICE_VERSION"
	envEnvironment        = "APP_ENV"
	envRedisAddr          = "REDIS_ADDR"
	defaultServiceName    = "lingo-services-progress"
	defaultServiceVersion = "dev"
	defaultEnvironment    = "development"
)

// Load 解析配置文件并返回归一化的 RuntimeConfig。
func Load(params Params) (RuntimeConfig, error) {
	confPath := resolveConfPath(params.ConfPath)
	if err := loadEnvFiles(confPath); err != nil {
		return RuntimeConfig{}, fmt.Errorf("load env files: %w", err)
	}

	bootstrap, err := loadBootstrap(confPath)
	if err != nil {
		return RuntimeConfig{}, err
	}

	runtime, err := fromFile(bootstrap)
	if err != nil {
		return RuntimeConfig{}, fmt.Errorf("normalize config %q: %w", confPath, err)
	}
	runtime.Service = buildServiceInfo()
	fillDefaults(&runtime)
	if err := runtime.Validate(); err != nil {
		return RuntimeConfig{}, fmt.Errorf("validate runtime config: %w", err)
	}

	return runtime, nil
}

func resolveConfPath(explicit string) string {
	switch {
	case explicit != "":
		return explicit
	case os.Getenv(envConfPath) != "":
		return os.Getenv(envConfPath)
	default:
		return defaultConfPath
	}
}

// loadEnvFiles 依次查找配置所在目录与工作目录下的 .env.local、.env，后者覆盖前者已设置的变量。
func loadEnvFiles(confPath string) error {
	var files []string
	for _, dir := range envSearchDirs(confPath) {
		for _, name := range []string{".env.local", ".env"} {
			fp := filepath.Join(dir, name)
			if _, err := os.Stat(fp); err == nil && !slices.Contains(files, fp) {
				files = append(files, fp)
			}
		}
	}
	if len(files) == 0 {
		return nil
	}
	return godotenv.Overload(files...)
}

func envSearchDirs(confPath string) []string {
	var dirs []string
	if info, err := os.Stat(confPath); err == nil {
		dir := confPath
		if !info.IsDir() {
			dir = filepath.Dir(confPath)
		}
		dirs = append(dirs, filepath.Clean(dir))
	}
	if cwd, err := os.Getwd(); err == nil && !slices.Contains(dirs, filepath.Clean(cwd)) {
		dirs = append(dirs, filepath.Clean(cwd))
	}
	return dirs
}

func loadBootstrap(confPath string) (*bootstrap, error) {
	c := config.New(config.WithSource(file.NewSource(confPath)))
	if err := c.Load(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", confPath, err)
	}
	defer c.Close()

	var b bootstrap
	if err := c.Scan(&b); err != nil {
		return nil, fmt.Errorf("scan config %q: %w", confPath, err)
	}

	applyEnvOverrides(&b)

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&b); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &b, nil
}

func buildServiceInfo() ServiceInfo {
	return ServiceInfo{
		Name:        firstNonEmpty(os.Getenv(envServiceName), defaultServiceName),
		Version:     firstNonEmpty(os.Getenv(envServiceVersion), defaultServiceVersion),
		Environment: resolveEnvironment(os.Getenv(envEnvironment)),
		InstanceID:  hostnameOrDefault(),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveEnvironment(raw string) string {
	if raw == "" {
		return defaultEnvironment
	}
	switch raw {
	case "dev", "development":
		return defaultEnvironment
	case "staging":
		return "staging"
	case "prod", "production":
		return "production"
	default:
		return raw
	}
}

func hostnameOrDefault() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "unknown-instance"
	}
	return host
}

// envOverrides 列出可由环境变量覆盖的配置项，值为空时跳过。
var envOverrides = []struct {
	key   string
	apply func(b *bootstrap, value string)
}{
	{envDatabaseURL, func(b *bootstrap, v string) { ensurePostgres(b).DSN = v }},
	{envRedisAddr, func(b *bootstrap, v string) { ensureRedis(b).Addr = v }},
	{envPort, func(b *bootstrap, v string) {
		httpCfg := ensureHTTP(b)
		httpCfg.Addr = replacePort(httpCfg.Addr, v)
	}},
}

func applyEnvOverrides(b *bootstrap) {
	if b == nil {
		return
	}
	for _, o := range envOverrides {
		if v := os.Getenv(o.key); v != "" {
			o.apply(b, v)
		}
	}
}

func ensurePostgres(b *bootstrap) *postgresFile {
	if b.Data == nil {
		b.Data = &dataFile{}
	}
	if b.Data.Postgres == nil {
		b.Data.Postgres = &postgresFile{}
	}
	return b.Data.Postgres
}

func ensureRedis(b *bootstrap) *redisFile {
	if b.Data == nil {
		b.Data = &dataFile{}
	}
	if b.Data.Redis == nil {
		b.Data.Redis = &redisFile{}
	}
	return b.Data.Redis
}

func ensureHTTP(b *bootstrap) *httpFile {
	if b.Server == nil {
		b.Server = &serverFile{}
	}
	if b.Server.HTTP == nil {
		b.Server.HTTP = &httpFile{}
	}
	return b.Server.HTTP
}

func replacePort(addr, port string) string {
	if addr == "" {
		return ":" + port
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return ":" + port
	}
	return net.JoinHostPort(host, port)
}
