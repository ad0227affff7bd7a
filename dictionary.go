package hanscan

import "strings"

// PhraseEntry is a single source-phrase to target-phrase dictionary pair.
type PhraseEntry struct {
	Source string
	Target string
}

// Dict is the merged phrase dictionary the segmenter matches against. It is
// a plain value passed explicitly to consumers, not module-level state.
// Duplicate sources resolve to the last definition.
type Dict struct {
	m map[string]string
}

// NewDict builds a dictionary from entries in order. Entries with an empty
// source are dropped; later entries override earlier ones.
func NewDict(entries ...PhraseEntry) *Dict {
	d := &Dict{m: make(map[string]string, len(entries))}
	for _, e := range entries {
		d.Set(e.Source, e.Target)
	}
	return d
}

// Get looks up the translation for a source phrase.
func (d *Dict) Get(source string) (string, bool) {
	v, ok := d.m[source]
	return v, ok
}

// Set adds or overwrites a single entry. Empty sources are ignored.
func (d *Dict) Set(source, target string) {
	if source == "" {
		return
	}
	d.m[source] = target
}

// Merge copies entries from m into the dictionary, overwriting existing
// keys. Entries with blank keys or values, or where the value equals the
// key (a no-op translation), are dropped. Returns the number of entries
// applied.
func (d *Dict) Merge(m map[string]string) int {
	applied := 0
	for k, v := range m {
		k = strings.TrimSpace(k)
		v = strings.TrimSpace(v)
		if k == "" || v == "" || k == v {
			continue
		}
		d.m[k] = v
		applied++
	}
	return applied
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.m)
}

// Mapping returns a copy of the dictionary as a flat map.
func (d *Dict) Mapping() map[string]string {
	out := make(map[string]string, len(d.m))
	for k, v := range d.m {
		out[k] = v
	}
	return out
}

// BuiltinDict returns the built-in zh→en phrase dictionary. Complete phrases
// come first so they stay visible above the single-word fallbacks; the
// greedy segmenter prefers them by length regardless of order.
func BuiltinDict() *Dict {
	return NewDict(builtinEntries...)
}

var builtinEntries = []PhraseEntry{
	// Complete phrases and sentences
	{"环境变量配置格式见docker-compose.yml", "Environment variable configuration format see docker-compose.yml"},
	{"配置文件", "configuration file"},
	{"代理设置", "proxy settings"},
	{"网络地址", "network address"},
	{"打开你的代理软件查看代理协议", "open your proxy software to view the proxy agreement"},
	{"代理网络的address", "proxy network address"},
	{"函数配置", "function configuration"},
	{"返回结果", "return result"},
	{"配置和返回结果", "configuration and return result"},
	{"代理网络", "proxy network"},
	{"配置参数", "configuration parameters"},
	{"系统设置", "system settings"},
	{"用户界面", "user interface"},
	{"数据处理", "data processing"},
	{"文件管理", "file management"},
	{"错误处理", "error handling"},
	{"日志记录", "log recording"},
	{"性能监控", "performance monitoring"},
	{"安全验证", "security verification"},
	{"网络连接", "network connection"},
	{"数据库连接", "database connection"},
	{"服务器配置", "server configuration"},
	{"客户端设置", "client settings"},
	{"API接口", "API interface"},
	{"请求处理", "request processing"},
	{"响应数据", "response data"},
	{"状态码", "status code"},
	{"异常信息", "exception information"},
	{"调试模式", "debug mode"},
	{"生产环境", "production environment"},
	{"开发环境", "development environment"},
	{"测试用例", "test case"},
	{"测试函数", "test function"},
	{"单元测试", "unit test"},
	{"集成测试", "integration test"},
	{"自动化测试", "automated testing"},
	{"代码审查", "code review"},
	{"版本控制", "version control"},
	{"持续集成", "continuous integration"},
	{"部署流程", "deployment process"},
	{"监控告警", "monitoring alerts"},
	{"备份恢复", "backup and recovery"},
	{"性能优化", "performance optimization"},
	{"内存管理", "memory management"},
	{"缓存策略", "caching strategy"},
	{"负载均衡", "load balancing"},
	{"高可用性", "high availability"},
	{"扩展性", "scalability"},
	{"可维护性", "maintainability"},
	{"文档说明", "documentation"},
	{"用户手册", "user manual"},
	{"技术规范", "technical specification"},
	{"项目管理", "project management"},
	{"需求分析", "requirement analysis"},
	{"系统架构", "system architecture"},
	{"设计模式", "design pattern"},
	{"算法实现", "algorithm implementation"},
	{"数据结构", "data structure"},
	{"编程语言", "programming language"},
	{"开发工具", "development tools"},
	{"集成开发环境", "integrated development environment"},
	{"版本管理", "version management"},
	{"依赖管理", "dependency management"},
	{"包管理", "package management"},
	{"构建工具", "build tools"},
	{"编译器", "compiler"},
	{"解释器", "interpreter"},
	{"虚拟机", "virtual machine"},
	{"容器化", "containerization"},
	{"微服务", "microservices"},
	{"云计算", "cloud computing"},
	{"服务器", "server"},
	{"客户端", "client"},
	{"前端", "frontend"},
	{"后端", "backend"},
	{"全栈", "full stack"},
	{"移动应用", "mobile application"},
	{"网页应用", "web application"},
	{"桌面应用", "desktop application"},

	// Individual words for fallback
	{"配置", "configuration"},
	{"设置", "settings"},
	{"结果", "result"},
	{"返回", "return"},
	{"网络", "network"},
	{"地址", "address"},
	{"代理", "proxy"},
	{"软件", "software"},
	{"协议", "agreement"},
	{"格式", "format"},
	{"文件", "file"},
	{"变量", "variable"},
	{"环境", "environment"},
	{"见", "see"},
	{"查看", "view"},
	{"打开", "open"},
	{"你的", "your"},
	{"系统", "system"},
	{"用户", "user"},
	{"数据", "data"},
	{"处理", "processing"},
	{"管理", "management"},
	{"错误", "error"},
	{"日志", "log"},
	{"性能", "performance"},
	{"安全", "security"},
	{"连接", "connection"},
	{"服务", "service"},
	{"接口", "interface"},
	{"请求", "request"},
	{"响应", "response"},
	{"状态", "status"},
	{"异常", "exception"},
	{"调试", "debug"},
	{"测试", "test"},
	{"函数", "function"},
	{"开发", "development"},
	{"生产", "production"},
	{"部署", "deployment"},
	{"监控", "monitoring"},
	{"备份", "backup"},
	{"恢复", "recovery"},
	{"优化", "optimization"},
	{"内存", "memory"},
	{"缓存", "cache"},
	{"负载", "load"},
	{"均衡", "balance"},
	{"可用", "available"},
	{"扩展", "extension"},
	{"维护", "maintenance"},
	{"文档", "documentation"},
	{"手册", "manual"},
	{"规范", "specification"},
	{"项目", "project"},
	{"需求", "requirement"},
	{"分析", "analysis"},
	{"架构", "architecture"},
	{"设计", "design"},
	{"模式", "pattern"},
	{"算法", "algorithm"},
	{"实现", "implementation"},
	{"结构", "structure"},
	{"语言", "language"},
	{"工具", "tool"},
	// The legacy dictionary literal assigned a few keys twice; last
	// definition wins, matching its runtime behaviour.
	{"环境", "environment"},
	{"版本", "version"},
	{"依赖", "dependency"},
	{"包", "package"},
	{"构建", "build"},
	{"编译", "compile"},
	{"解释", "interpret"},
	{"虚拟", "virtual"},
	{"容器", "container"},
	{"服务", "service"},
	{"云", "cloud"},
	{"计算", "computing"},
	{"前端", "frontend"},
	{"后端", "backend"},
	{"移动", "mobile"},
	{"网页", "web"},
	{"桌面", "desktop"},
	{"应用", "application"},
}
