package mocks

//go:generate mockery --name EventStore --srcpkg github.com/aevon-lab/project-tally/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ProfileStore --srcpkg github.com/aevon-lab/project-tally/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name RollupStore --srcpkg github.com/aevon-lab/project-tally/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name CursorStore --srcpkg github.com/aevon-lab/project-tally/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name LeaseStore --srcpkg github.com/aevon-lab/project-tally/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
