package cache

import (
	"testing"
	"time"

	"terminal-terrace/lms-service/config"

	"github.com/stretchr/testify/assert"
)

func TestKeyDerivation(t *testing.T) {
	assert.Equal(t, "Course_3", EntityKey("Course", 3))
	assert.Equal(t, "Course_All", CollectionKey("Course"))
	assert.Equal(t, "Message_User_42", FilteredKey("Message", "User", 42))
}

func TestTTLUsesConfiguredValue(t *testing.T) {
	old := config.Conf
	defer func() { config.Conf = old }()

	config.Conf = &config.AppConfig{Cache: config.CacheConfig{TTLMinutes: 30}}
	assert.Equal(t, 30*time.Minute, TTL())

	// 未配置时回退到统一缺省值 10 分钟
	config.Conf = nil
	assert.Equal(t, 10*time.Minute, TTL())
}
