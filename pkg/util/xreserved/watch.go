package xreserved

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/omeyang/xip/pkg/observability/xlog"
)

// WatchCallback 注册表重载回调。
//
// 重载成功时 r 为新注册表、err 为 nil；
// 失败时 r 为仍在使用的旧注册表、err 为失败原因。
type WatchCallback func(r *Registry, err error)

// Watcher 监视配置文件并在变更时重载注册表。
//
// [Watcher.Current] 总是返回最近一次成功加载的注册表，
// 重载失败不会替换它。
type Watcher struct {
	path     string
	opts     []Option
	logger   xlog.Logger
	debounce time.Duration
	callback WatchCallback

	current atomic.Pointer[Registry]
	watcher *fsnotify.Watcher

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	running bool
	timer   *time.Timer // debounce 定时器，Stop 时取消
}

// Watch 加载 path 并创建监视器。
//
// 首次加载失败直接返回错误。返回的 Watcher 需要调用 Start 或 StartAsync
// 开始监视，使用完毕后调用 Stop。
//
//	w, err := xreserved.Watch("/etc/xip/reserved.yaml", func(r *xreserved.Registry, err error) {
//	    if err != nil {
//	        return // 继续使用旧注册表
//	    }
//	})
//	if err != nil {
//	    return err
//	}
//	w.StartAsync()
//	defer w.Stop()
//
//	w.Current().Contains(addr)
func Watch(path string, callback WatchCallback, opts ...Option) (*Watcher, error) {
	r, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xreserved: failed to create watcher: %w", err)
	}

	// 监视所在目录而非文件本身，编辑器保存时可能先删除再创建
	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("xreserved: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		opts:     opts,
		logger:   o.logger.With(xlog.Component("xreserved")),
		debounce: o.debounce,
		callback: callback,
		watcher:  fsWatcher,
		ctx:      ctx,
		cancel:   cancel,
	}
	w.current.Store(r)
	return w, nil
}

// Current 返回当前生效的注册表。
func (w *Watcher) Current() *Registry {
	return w.current.Load()
}

// Path 返回被监视的配置文件路径。
func (w *Watcher) Path() string {
	return w.path
}

// Start 启动监视，阻塞直到 Stop 被调用。
func (w *Watcher) Start() {
	if !w.markRunning() {
		return
	}
	w.run()
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
func (w *Watcher) StartAsync() {
	if !w.markRunning() {
		return
	}
	go w.run()
}

// markRunning 在启动 goroutine 前设置 running，避免与 Stop 竞争。
func (w *Watcher) markRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running || w.ctx.Err() != nil {
		return false
	}
	w.running = true
	w.wg.Add(1)
	return true
}

// Stop 停止监视，并等待监视循环和进行中的重载退出，可重复调用。
// Stop 返回后不会再替换注册表或调用回调。
// 不要在 WatchCallback 中调用 Stop，否则会死锁。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.ctx.Err() != nil {
		w.mu.Unlock()
		return nil
	}
	w.cancelTimer()
	w.cancel()
	w.running = false
	err := w.watcher.Close()
	w.mu.Unlock()

	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	filename := filepath.Base(w.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.handleError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	if filepath.Base(event.Name) != filename {
		return
	}
	// Rename: vim/emacs 等编辑器写临时文件后 rename 的原子写入模式
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.ctx.Err() != nil {
		return
	}
	w.cancelTimer()
	// 每个定时器计入 wg，由 reload 或 cancelTimer 释放
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// cancelTimer 取消尚未触发的定时器，调用方必须持有 mu。
// 已触发的定时器由 reload 自己释放 wg。
func (w *Watcher) cancelTimer() {
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.timer = nil
}

func (w *Watcher) reload() {
	defer w.wg.Done()
	if w.ctx.Err() != nil {
		return
	}
	start := time.Now()
	r, err := loadFile(w.path, w.opts)
	if w.ctx.Err() != nil {
		return
	}
	if err != nil {
		w.logger.Warn(w.ctx, "reload reserved registry failed, keeping previous",
			xlog.Operation("reload"), xlog.Path(w.path), xlog.Err(err))
		w.notify(w.current.Load(), err)
		return
	}
	w.current.Store(r)
	w.logger.Info(w.ctx, "reserved registry reloaded",
		xlog.Operation("reload"), xlog.Path(w.path), xlog.Count(int64(r.Len())), xlog.Duration(time.Since(start)))
	w.notify(r, nil)
}

func (w *Watcher) handleError(err error) {
	w.logger.Error(w.ctx, "watch reserved registry failed", xlog.Path(w.path), xlog.Err(err))
	w.notify(w.current.Load(), fmt.Errorf("xreserved: watch error: %w", err))
}

func (w *Watcher) notify(r *Registry, err error) {
	if w.callback != nil && w.ctx.Err() == nil {
		w.callback(r, err)
	}
}
