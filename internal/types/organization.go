package types

// Organization represents a GitHub organization
type Organization struct {
	Login string `json:"login" yaml:"login"`
}

// RepositoryRef is a repository flagged by the campaign search
type RepositoryRef struct {
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
	URL   string `json:"url" yaml:"url"`
}

// RepositoryOwners returns the owner of every repository, duplicates included
func RepositoryOwners(repos []RepositoryRef) []string {
	owners := make([]string, 0, len(repos))
	for _, repo := range repos {
		owners = append(owners, repo.Owner)
	}
	return owners
}
