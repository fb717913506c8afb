package logging

const (
	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldDuration = "duration"
	FieldUrl      = "url"

	FieldContractName    = "contract"
	FieldContractAddress = "contractAddress"
	FieldSourceName      = "sourceName"
	FieldArtifactPath    = "artifactPath"

	FieldTxHash   = "txHash"
	FieldTxNonce  = "txNonce"
	FieldDeployer = "deployer"
	FieldGasUsed  = "gasUsed"
	FieldGasPrice = "gasPrice"
	FieldCost     = "cost"

	FieldBlockHash   = "blockHash"
	FieldBlockNumber = "blockNumber"

	FieldSolcPath    = "solc"
	FieldSolcVersion = "solcVersion"
)
