package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBlogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	blogs := mock.NewMockBlogRepository(ctrl)
	svc := NewBlogService(blogs, validators.NewRecordValidator(), logger.Nop())

	blogs.EXPECT().CreateBlog(gomock.Any(), models.Blog{UserID: 1, Name: "notes"}).Return(models.Blog{BlogID: 5, UserID: 1, Name: "notes"}, nil)

	got, err := svc.Create(context.Background(), models.Blog{UserID: 1, Name: "notes"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.BlogID)

	_, err = svc.Create(context.Background(), models.Blog{UserID: 1, Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestBlogService_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	blogs := mock.NewMockBlogRepository(ctrl)
	svc := NewBlogService(blogs, validators.NewRecordValidator(), logger.Nop())

	blogs.EXPECT().UpdateBlog(gomock.Any(), gomock.Any()).Return(models.Blog{}, store.ErrBlogNotFound)
	_, err := svc.Update(context.Background(), models.BlogUpdate{BlogID: 9, Name: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrBlogNotFound)

	_, err = svc.Update(context.Background(), models.BlogUpdate{BlogID: 9})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	blogs.EXPECT().DeleteBlog(gomock.Any(), int64(9)).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), 9))
}

func TestPostService_ListForBlog(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	blogs := mock.NewMockBlogRepository(ctrl)
	svc := NewPostService(posts, blogs, validators.NewRecordValidator(), logger.Nop())

	blogs.EXPECT().FindBlogByID(gomock.Any(), int64(1)).Return(models.Blog{BlogID: 1}, nil)
	posts.EXPECT().ListPostsByBlog(gomock.Any(), int64(1)).Return([]models.Post{{PostID: 1, BlogID: 1}}, nil)

	got, err := svc.ListForBlog(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	blogs.EXPECT().FindBlogByID(gomock.Any(), int64(2)).Return(models.Blog{}, store.ErrBlogNotFound)
	_, err = svc.ListForBlog(context.Background(), 2)
	assert.ErrorIs(t, err, store.ErrBlogNotFound)
}

func TestPostService_CreateRequiresBlog(t *testing.T) {
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	svc := NewPostService(posts, mock.NewMockBlogRepository(ctrl), validators.NewRecordValidator(), logger.Nop())

	_, err := svc.Create(context.Background(), models.Post{Name: "no blog"})
	assert.ErrorIs(t, err, validators.ErrInvalidBlogID)

	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(models.Post{}, store.ErrParentNotFound)
	_, err = svc.Create(context.Background(), models.Post{BlogID: 77, Name: "orphan"})
	assert.ErrorIs(t, err, store.ErrParentNotFound)
}
