package usecase

import (
	"context"
	"strings"

	"videotube/domain/apperror"
	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/logger"
)

type ICommentUsecase interface {
	Add(ctx context.Context, actorID, videoID, content string) (*model.Comment, error)
	Update(ctx context.Context, actorID, commentID, content string) (*model.Comment, error)
	Delete(ctx context.Context, actorID, commentID string) error
	ListByVideo(ctx context.Context, videoID string, page dto.PageRequest) (*dto.Page[model.CommentWithOwner], error)
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	likeRepo    repository.ILike
}

func NewCommentUsecase(commentRepo repository.IComment, videoRepo repository.IVideo, likeRepo repository.ILike) ICommentUsecase {
	return &commentUsecase{commentRepo: commentRepo, videoRepo: videoRepo, likeRepo: likeRepo}
}

func (u *commentUsecase) Add(ctx context.Context, actorID, videoID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	videoOID, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoOID); err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	return u.commentRepo.Create(ctx, model.Comment{
		Content: content,
		Video:   videoOID,
		Owner:   actor,
	})
}

func (u *commentUsecase) Update(ctx context.Context, actorID, commentID, content string) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperror.BadRequest("Content is required")
	}
	comment, err := u.ownedComment(ctx, actorID, commentID)
	if err != nil {
		return nil, err
	}
	updated, err := u.commentRepo.UpdateContent(ctx, comment.ID, content)
	if err != nil {
		return nil, notFoundOr(err, "Comment does not exist")
	}
	return updated, nil
}

func (u *commentUsecase) Delete(ctx context.Context, actorID, commentID string) error {
	comment, err := u.ownedComment(ctx, actorID, commentID)
	if err != nil {
		return err
	}
	if _, err := u.likeRepo.DeleteByTarget(ctx, model.LikeTargetComment, comment.ID); err != nil {
		logger.GetLogger().WithField("error", err).Warn("like cascade failed on comment delete")
	}
	if err := u.commentRepo.Delete(ctx, comment.ID); err != nil {
		return notFoundOr(err, "Comment does not exist")
	}
	return nil
}

func (u *commentUsecase) ListByVideo(ctx context.Context, videoID string, page dto.PageRequest) (*dto.Page[model.CommentWithOwner], error) {
	videoOID, err := parseObjectID(videoID, "video id")
	if err != nil {
		return nil, err
	}
	if _, err := u.videoRepo.GetByID(ctx, videoOID); err != nil {
		return nil, notFoundOr(err, "Video does not exist")
	}
	rows, total, err := u.commentRepo.ListByVideo(ctx, videoOID, page)
	if err != nil {
		return nil, err
	}
	result := dto.NewPage(page, total, rows)
	return &result, nil
}

func (u *commentUsecase) ownedComment(ctx context.Context, actorID, commentID string) (*model.Comment, error) {
	id, err := parseObjectID(commentID, "comment id")
	if err != nil {
		return nil, err
	}
	actor, err := parseObjectID(actorID, "user id")
	if err != nil {
		return nil, err
	}
	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Comment does not exist")
	}
	if comment.Owner != actor {
		return nil, apperror.Forbidden("You do not own this comment")
	}
	return comment, nil
}
