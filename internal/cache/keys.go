package cache

import (
	"fmt"
	"time"

	"terminal-terrace/lms-service/config"
)

// 缓存 key 为确定性字符串：
//   单实体        <EntityType>_<id>        e.g. Course_3
//   全量集合      <EntityType>_All         e.g. Course_All
//   过滤集合      <EntityType>_<过滤名>_<值> e.g. Message_User_42
const allSuffix = "All"

// EntityKey 单实体 key
func EntityKey(entityType string, id int) string {
	return fmt.Sprintf("%s_%d", entityType, id)
}

// CollectionKey 全量集合 key
func CollectionKey(entityType string) string {
	return fmt.Sprintf("%s_%s", entityType, allSuffix)
}

// FilteredKey 过滤集合 key，过滤参数嵌入 key
func FilteredKey(entityType, filter string, value int) string {
	return fmt.Sprintf("%s_%s_%d", entityType, filter, value)
}

// TTL 统一的缓存过期时间
// 全部实体共用一个策略，配置缺省为 10 分钟
func TTL() time.Duration {
	minutes := 10
	if config.Conf != nil && config.Conf.Cache.TTLMinutes > 0 {
		minutes = config.Conf.Cache.TTLMinutes
	}
	return time.Duration(minutes) * time.Minute
}
