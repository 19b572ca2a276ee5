package cos

import (
	"github.com/ecodeclub/talent/internal/cos/internal/web"
	"github.com/gotomicro/ego/core/econf"
)

type Handler = web.Handler

// InitHandler 腾讯云 COS 简历上传的临时授权接口
func InitHandler() *Handler {
	type Config struct {
		SecretID  string `yaml:"secretId"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appId"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return web.NewHandler(cfg.SecretID, cfg.SecretKey, cfg.AppID, cfg.Bucket, cfg.Region)
}
