package cliservice

//go:generate go run github.com/matryer/moq -out hre_generated_mock_test.go -pkg cliservice ../../internal/hre Runtime ContractFactory DeployedContract
