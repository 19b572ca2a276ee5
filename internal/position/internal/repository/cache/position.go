package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/talent/internal/position/internal/domain"
	"github.com/pkg/errors"
)

const (
	openListExpiration = 10 * time.Minute
	openListKey        = "open:list"
)

var (
	ErrOpenListNotFound = errors.New("在招职位列表缓存未命中")
)

// PositionCache 只缓存对外展示的在招职位首屏列表，命中失败直接回源
//
//go:generate mockgen -source=./position.go -package=cachemocks -destination=./mocks/position_cache.mock.go PositionCache
type PositionCache interface {
	SetOpenList(ctx context.Context, positions []domain.Position) error
	GetOpenList(ctx context.Context) ([]domain.Position, error)
	// DelOpenList 发布、关闭、取消之后失效缓存
	DelOpenList(ctx context.Context) error
}

type positionCache struct {
	ec ecache.Cache
}

func NewPositionCache(ec ecache.Cache) PositionCache {
	return &positionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "position:",
		},
	}
}

func (c *positionCache) SetOpenList(ctx context.Context, positions []domain.Position) error {
	data, err := json.Marshal(positions)
	if err != nil {
		return errors.Wrap(err, "序列化在招职位列表失败")
	}
	return c.ec.Set(ctx, openListKey, string(data), openListExpiration)
}

func (c *positionCache) GetOpenList(ctx context.Context) ([]domain.Position, error) {
	val := c.ec.Get(ctx, openListKey)
	if val.KeyNotFound() {
		return nil, ErrOpenListNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var positions []domain.Position
	err := json.Unmarshal([]byte(val.Val.(string)), &positions)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化在招职位列表失败")
	}
	return positions, nil
}

func (c *positionCache) DelOpenList(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, openListKey)
	return err
}
