package repoargs

type RepositoryName string

const (
	UserRepoName      RepositoryName = "user"
	StatementRepoName RepositoryName = "statement"
)
