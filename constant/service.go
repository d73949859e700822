package constant

// 服务标识，用于追踪与日志
const (
	ServiceName    = "blog_service"
	ServiceVersion = "1.0.0"
)
