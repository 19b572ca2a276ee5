package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemotePDFConverter 调远程转换服务（无头浏览器集群的 HTTP 封装）生成 PDF
type RemotePDFConverter struct {
	// Endpoint 形如 http://localhost:9999/pdf/convert
	Endpoint string
	client   *http.Client
}

func NewRemotePDFConverter(endpoint string) *RemotePDFConverter {
	return &RemotePDFConverter{
		Endpoint: endpoint,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type convertReq struct {
	HTML string `json:"html"`
}

// ConvertHTMLToPDF 远程服务直接返回 PDF 字节流。opts 目前不透传。
func (c *RemotePDFConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error) {
	body, err := json.Marshal(convertReq{HTML: html})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("调用PDF转换服务失败: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("PDF转换服务返回 %d: %s", resp.StatusCode, msg)
	}
	return io.ReadAll(resp.Body)
}
