package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

type HashtagRepo interface {
	IndexHashtag(ctx context.Context, tag *HashtagES, version int64) error
	DeleteHashtag(ctx context.Context, id uint64) error
	SearchHashtags(ctx context.Context, keyword string, from, size int) ([]*HashtagES, error)
}

type HashtagRepoImpl struct {
}

func NewHashtagRepo() HashtagRepo {
	return &HashtagRepoImpl{}
}

func (s *HashtagRepoImpl) IndexHashtag(ctx context.Context, tag *HashtagES, version int64) error {
	docID := strconv.FormatUint(tag.ID, 10)

	_, err := Client.Index(HashtagIndex).
		Id(docID).
		Document(tag).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				log.Warn("Version conflict detected, skipping old data",
					"hashtag_id", tag.ID,
					"version", version)
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *HashtagRepoImpl) DeleteHashtag(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := Client.Delete(HashtagIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("Hashtag already deleted or not found in ES", "id", id)
				return nil
			}
		}
		return err
	}
	return nil
}

// SearchHashtags 前缀匹配标签名
func (s *HashtagRepoImpl) SearchHashtags(ctx context.Context, keyword string, from, size int) ([]*HashtagES, error) {
	resp, err := Client.Search().
		Index(HashtagIndex).
		Query(&types.Query{
			MatchPhrasePrefix: map[string]types.MatchPhrasePrefixQuery{
				"name": {Query: keyword},
			},
		}).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*HashtagES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var tag HashtagES
		if err = json.Unmarshal(hit.Source_, &tag); err != nil {
			continue
		}
		results = append(results, &tag)
	}
	return results, nil
}
