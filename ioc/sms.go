package ioc

import (
	"github.com/ecodeclub/talent/internal/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

// initSMSClient 没配阿里云密钥时退化成控制台输出，本地开发不用真发短信
func initSMSClient() client.Client {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyId"`
		AccessKeySecret string `yaml:"accessKeySecret"`
	}
	var cfg Config
	err := econf.UnmarshalKey("sms.ali", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.AccessKeyID == "" {
		return client.NewConsoleClient()
	}
	c, err := client.NewAliyunSMS(cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		panic(err)
	}
	return c
}
