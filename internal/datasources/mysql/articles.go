package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/cafeorigenes/origenes-api/internal/domain"
)

var articleSummaryColumns = []string{
	"a.id", "a.title", "a.slug", "a.featured_image_url", "a.content", "a.created_at", "u.username",
}

func selectArticleSummaries() *sqlbuilder.SelectBuilder {
	sb := sqlbuilder.Select(articleSummaryColumns...)
	sb.From("articles a")
	sb.Join("users u", "a.id_author = u.id")
	return sb
}

func scanArticleSummary(scanner interface{ Scan(...interface{}) error }) (domain.ArticleSummary, error) {
	var (
		article       domain.ArticleSummary
		featuredImage sql.NullString
	)
	if err := scanner.Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&featuredImage,
		&article.Content,
		&article.CreatedAt,
		&article.AuthorName,
	); err != nil {
		return domain.ArticleSummary{}, err
	}
	article.FeaturedImageURL = nullStringPtr(featuredImage)
	return article, nil
}

func (r *Repository) querySummaries(ctx context.Context, sb *sqlbuilder.SelectBuilder) ([]domain.ArticleSummary, error) {
	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.ArticleSummary{}
	for rows.Next() {
		article, err := scanArticleSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, article)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *Repository) CountPublishedArticles(ctx context.Context) (int64, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("articles")
	sb.Where(sb.Equal("status", domain.ArticleStatusPublished))

	count, err := r.count(ctx, sb)
	if err != nil {
		return 0, fmt.Errorf("counting published articles: %w", err)
	}
	return count, nil
}

func (r *Repository) ListPublishedArticleIDs(ctx context.Context) ([]int64, error) {
	sb := sqlbuilder.Select("id")
	sb.From("articles")
	sb.Where(sb.Equal("status", domain.ArticleStatusPublished))
	sb.OrderBy("id")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running published IDs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning published IDs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *Repository) FetchArticleSummariesByID(ctx context.Context, ids []int64) ([]domain.ArticleSummary, error) {
	if len(ids) == 0 {
		return []domain.ArticleSummary{}, nil
	}

	sb := selectArticleSummaries()
	sb.Where(sb.In("a.id", int64sToArgs(ids)...))

	dbArticles, err := r.querySummaries(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("fetching articles by ID: %w", err)
	}

	articleMap := make(map[int64]domain.ArticleSummary, len(dbArticles))
	for _, article := range dbArticles {
		articleMap[article.ID] = article
	}

	// Build results in the same order as the input IDs
	articles := make([]domain.ArticleSummary, 0, len(ids))
	for _, id := range ids {
		if article, exists := articleMap[id]; exists {
			articles = append(articles, article)
		}
	}

	return articles, nil
}

func (r *Repository) ListPublishedArticles(
	ctx context.Context, sort domain.ArticleSort, limit, offset int,
) ([]domain.ArticleSummary, error) {
	sb := selectArticleSummaries()
	sb.Where(sb.Equal("a.status", domain.ArticleStatusPublished))

	switch sort {
	case domain.ArticleSortOldest:
		sb.OrderBy("a.created_at ASC")
	default:
		sb.OrderBy("a.created_at DESC")
	}
	sb.Limit(limit)
	sb.Offset(offset)

	articles, err := r.querySummaries(ctx, sb)
	if err != nil {
		return nil, fmt.Errorf("listing published articles: %w", err)
	}
	return articles, nil
}

func (r *Repository) FetchLatestPublishedArticle(ctx context.Context) (domain.ArticleSummary, error) {
	sb := selectArticleSummaries()
	sb.Where(sb.Equal("a.status", domain.ArticleStatusPublished))
	sb.OrderBy("a.created_at DESC")
	sb.Limit(1)

	query, args := sb.Build()
	article, err := scanArticleSummary(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ArticleSummary{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.ArticleSummary{}, fmt.Errorf("fetching latest published article: %w", err)
	}
	return article, nil
}

func (r *Repository) ListLatestPublishedTitles(ctx context.Context, limit int) ([]string, error) {
	sb := sqlbuilder.Select("title")
	sb.From("articles")
	sb.Where(sb.Equal("status", domain.ArticleStatusPublished))
	sb.OrderBy("created_at DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running latest titles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("scanning latest titles: %w", err)
		}
		titles = append(titles, title)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return titles, nil
}

var articleColumns = []string{
	"a.id", "a.title", "a.slug", "a.content", "a.featured_image_url", "a.status",
	"a.created_at", "a.id_author", "u.username", "a.reactions",
}

func (r *Repository) fetchArticle(ctx context.Context, where func(sb *sqlbuilder.SelectBuilder)) (domain.Article, error) {
	sb := sqlbuilder.Select(articleColumns...)
	sb.From("articles a")
	sb.Join("users u", "a.id_author = u.id")
	where(sb)

	query, args := sb.Build()

	var (
		article       domain.Article
		featuredImage sql.NullString
		reactions     []byte
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&article.ID,
		&article.Title,
		&article.Slug,
		&article.Content,
		&featuredImage,
		&article.Status,
		&article.CreatedAt,
		&article.AuthorID,
		&article.AuthorName,
		&reactions,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, err
	}

	article.FeaturedImageURL = nullStringPtr(featuredImage)
	article.Reactions = domain.DecodeReactions(reactions)
	return article, nil
}

func (r *Repository) FetchPublishedArticleBySlug(ctx context.Context, slug string) (domain.Article, error) {
	article, err := r.fetchArticle(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(
			sb.Equal("a.slug", slug),
			sb.Equal("a.status", domain.ArticleStatusPublished),
		)
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Article{}, fmt.Errorf("fetching article by slug: %w", err)
	}
	return article, err
}

func (r *Repository) FetchArticleByID(ctx context.Context, id int64) (domain.Article, error) {
	article, err := r.fetchArticle(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal("a.id", id))
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.Article{}, fmt.Errorf("fetching article by ID: %w", err)
	}
	return article, err
}

func (r *Repository) FetchArticleAuthorID(ctx context.Context, articleID int64) (int64, error) {
	sb := sqlbuilder.Select("id_author")
	sb.From("articles")
	sb.Where(sb.Equal("id", articleID))

	query, args := sb.Build()

	var authorID int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&authorID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("fetching article author: %w", err)
	}
	return authorID, nil
}

func (r *Repository) listArticles(ctx context.Context, where func(sb *sqlbuilder.SelectBuilder)) ([]domain.ArticleListing, error) {
	sb := sqlbuilder.Select("a.id", "a.title", "a.status", "a.created_at", "a.id_author", "u.username")
	sb.From("articles a")
	sb.Join("users u", "a.id_author = u.id")
	where(sb)
	sb.OrderBy("a.created_at DESC")

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running article listing query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.ArticleListing{}
	for rows.Next() {
		var a domain.ArticleListing
		if err := rows.Scan(&a.ID, &a.Title, &a.Status, &a.CreatedAt, &a.AuthorID, &a.AuthorName); err != nil {
			return nil, fmt.Errorf("scanning article listing: %w", err)
		}
		articles = append(articles, a)
	}
	if err := closeRows(rows); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *Repository) ListAllArticles(ctx context.Context) ([]domain.ArticleListing, error) {
	return r.listArticles(ctx, func(*sqlbuilder.SelectBuilder) {})
}

func (r *Repository) ListArticlesByAuthor(ctx context.Context, authorID int64) ([]domain.ArticleListing, error) {
	return r.listArticles(ctx, func(sb *sqlbuilder.SelectBuilder) {
		sb.Where(sb.Equal("a.id_author", authorID))
	})
}

func (r *Repository) CreateArticle(ctx context.Context, article domain.NewArticle) (int64, error) {
	ib := sqlbuilder.InsertInto("articles")
	ib.Cols("title", "slug", "content", "featured_image_url", "id_author", "status")
	ib.Values(article.Title, article.Slug, article.Content, article.FeaturedImageURL, article.AuthorID, article.Status)

	id, err := r.insert(ctx, ib)
	if err != nil && !errors.Is(err, domain.ErrDuplicate) {
		return 0, fmt.Errorf("inserting article: %w", err)
	}
	return id, err
}

func (r *Repository) UpdateArticle(ctx context.Context, id int64, update domain.ArticleUpdate) error {
	ub := sqlbuilder.Update("articles")

	var assignments []string
	if update.Title != nil {
		assignments = append(assignments, ub.Assign("title", *update.Title))
	}
	if update.Slug != nil {
		assignments = append(assignments, ub.Assign("slug", *update.Slug))
	}
	if update.Content != nil {
		assignments = append(assignments, ub.Assign("content", *update.Content))
	}
	if update.Status != nil {
		assignments = append(assignments, ub.Assign("status", *update.Status))
	}
	if update.FeaturedImageURL != nil {
		assignments = append(assignments, ub.Assign("featured_image_url", *update.FeaturedImageURL))
	}
	if len(assignments) == 0 {
		return nil
	}

	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args := ub.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDuplicate) {
			return err
		}
		return fmt.Errorf("updating article: %w", err)
	}
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	db := sqlbuilder.DeleteFrom("articles")
	db.Where(db.Equal("id", id))

	query, args := db.Build()
	if err := r.execOne(ctx, query, args...); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("deleting article: %w", err)
	}
	return nil
}

func (r *Repository) ChangeArticleReactions(
	ctx context.Context, id int64, change domain.ReactionChange,
) (domain.Reactions, error) {
	if !change.Empty() {
		ub := sqlbuilder.Update("articles")

		var assignments []string
		if change.Increment != nil {
			path := ub.Var("$." + string(*change.Increment))
			assignments = append(assignments, fmt.Sprintf(
				"reactions = JSON_SET(COALESCE(reactions, '{}'), %s, "+
					"CAST(COALESCE(JSON_UNQUOTE(JSON_EXTRACT(reactions, %s)), 0) AS SIGNED) + 1)",
				path, path,
			))
		}
		if change.Decrement != nil {
			path := ub.Var("$." + string(*change.Decrement))
			assignments = append(assignments, fmt.Sprintf(
				"reactions = JSON_SET(COALESCE(reactions, '{}'), %s, "+
					"GREATEST(0, CAST(COALESCE(JSON_UNQUOTE(JSON_EXTRACT(reactions, %s)), 0) AS SIGNED) - 1))",
				path, path,
			))
		}
		ub.Set(assignments...)
		ub.Where(ub.Equal("id", id))

		query, args := ub.Build()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("updating article reactions: %w", err)
		}
	}

	sb := sqlbuilder.Select("reactions")
	sb.From("articles")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching article reactions: %w", err)
	}

	return domain.DecodeReactions(raw), nil
}
