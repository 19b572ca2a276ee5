package web

type TmpAuthCodeReq struct {
	// Key 简历文件名，最终会落在当前用户的简历目录下
	Key string `json:"key"`
	// Type 上传文件的 content-type
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int    `json:"startTime"`
	ExpiredTime  int    `json:"expiredTime"`
	// Key 实际允许上传的对象键，前端直传时要用这个
	Key string `json:"key"`
}
