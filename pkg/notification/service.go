package notification

import (
	"context"
	"sort"
)

type Service interface {
	// List returns all notifications, newest first.
	List(ctx context.Context) ([]Notification, error)
	Push(ctx context.Context, n Notification) (Notification, error)
	MarkRead(ctx context.Context, id string) (Notification, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Notification, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp > notifications[j].Timestamp
	})
	return notifications, nil
}

func (s *ServiceImpl) Push(ctx context.Context, n Notification) (Notification, error) {
	return s.repo.Add(ctx, n)
}

func (s *ServiceImpl) MarkRead(ctx context.Context, id string) (Notification, error) {
	return s.repo.MarkRead(ctx, id)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
